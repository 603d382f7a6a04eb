package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maiden-org/maiden/dataset"
	"github.com/maiden-org/maiden/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Loads the passenger dataset once, then serves the dashboard page
and its JSON/CSV API until interrupted. With dataset.watch enabled the
CSV file is reloaded on change and the snapshot swapped atomically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(cfg.Dataset.Path, logger)
		if err != nil {
			return err
		}
		store := server.NewStore(ds)

		srv, err := server.New(cfg, store, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Dataset.Watch {
			go func() {
				if err := server.Watch(ctx, cfg.Dataset.Path, store, logger); err != nil {
					logger.Error("dataset watcher stopped", zap.Error(err))
				}
			}()
		}

		return srv.Run(ctx)
	},
}
