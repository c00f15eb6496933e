package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/logging"
	"github.com/fireplan/fire-calculator/internal/server"
	"github.com/fireplan/fire-calculator/internal/store"
)

func newServeCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator over HTTP. Settings come from the environment:
  FIRE_ADDR, FIRE_LOG_LEVEL, FIRE_HISTORY_PATH, FIRE_INSIGHTS_TIMEOUT,
  FIRE_READ_TIMEOUT, FIRE_WRITE_TIMEOUT, FIRE_MAX_BODY_BYTES`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadServerSettings()
			if err != nil {
				return err
			}
			log, err := logging.New(os.Stderr, settings.LogLevel, logging.FormatJSON)
			if err != nil {
				return err
			}

			var history server.History
			if settings.HistoryPath != "" {
				h, err := store.Open(settings.HistoryPath)
				if err != nil {
					return err
				}
				defer h.Close()
				history = h
				log.Info().Str("path", settings.HistoryPath).Msg("calculation history enabled")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(newPlanner(log, settings.InsightsTimeout), history, log)
			return srv.ListenAndServe(ctx, settings)
		},
	}
}
