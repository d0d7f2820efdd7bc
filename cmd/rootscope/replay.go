package main

import (
	"RootScope/internal/adapters/eventbus"
	"RootScope/internal/app/replay"
	"RootScope/internal/core/hub"
	"RootScope/internal/shared/config"
	"RootScope/internal/shared/logger"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Publish a scripted sequence of events and print the derived hub state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Load Configuration
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if trace {
				cfg.Hub.TracePublishes = true
				if cfg.LogLevel > zerolog.DebugLevel {
					cfg.LogLevel = zerolog.DebugLevel
				}
			}

			// 2. Initialize Logger
			baseLogger := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.IsDev(), cfg.LogLevel)
			baseLogger.Debug().
				Str("app_env", cfg.AppEnv).
				Bool("trace", cfg.Hub.TracePublishes).
				Strs("trace_exclude", cfg.Hub.TraceExclude).
				Msg("Configuration loaded")

			// 3. Initialize the bus and the hub
			bus := eventbus.NewInMemoryEventBus(&baseLogger)
			h := hub.New(bus, cfg.Hub, &baseLogger)

			// 4. Load and run the script
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open script: %w", err)
			}
			defer f.Close()

			script, err := replay.Load(f)
			if err != nil {
				return err
			}

			log := baseLogger.With().Str("component", "replay").Str("script", args[0]).Logger()
			ctx := log.WithContext(cmd.Context())
			if err := script.Run(ctx, h); err != nil {
				return err
			}
			log.Info().Int("steps", len(script.Steps)).Msg("Script replayed")

			// 5. Print the derived state
			data, err := yaml.Marshal(h.Snapshot())
			if err != nil {
				return fmt.Errorf("could not encode hub state: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "log every published event at debug level")
	return cmd
}
