package main

import (
	"RootScope/internal/core/hub"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

type catalogRow struct {
	Name    string `yaml:"name"`
	Payload string `yaml:"payload"`
}

func newCatalogCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every event name with its payload type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []catalogRow
			for _, e := range hub.Catalog() {
				rows = append(rows, catalogRow{Name: e.Name(), Payload: e.PayloadType().String()})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				align := tw.CellAlignment{PerColumn: []tw.Align{tw.AlignLeft, tw.AlignLeft}}
				config := tablewriter.Config{}
				config.Header.Alignment = align
				config.Row.Alignment = align

				table := tablewriter.NewTable(out, tablewriter.WithConfig(config))
				table.Header("EVENT", "PAYLOAD")
				for _, r := range rows {
					if err := table.Append(r.Name, r.Payload); err != nil {
						return fmt.Errorf("could not render catalog: %w", err)
					}
				}
				return table.Render()
			case "yaml":
				data, err := yaml.Marshal(rows)
				if err != nil {
					return fmt.Errorf("could not encode catalog: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}
