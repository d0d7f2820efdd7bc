package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rootscope",
		Short: "Inspect and exercise the application event hub",
		Long: `rootscope works with the in-process event hub that subsystems use to
announce state changes to each other.

It can list the event catalog and replay a YAML script of events against a
fresh hub, printing the state the hub derived from them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCatalogCmd())
	root.AddCommand(newReplayCmd())
	return root
}
