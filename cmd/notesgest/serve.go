package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/notesgest/internal/api"
	"github.com/dgallion1/notesgest/internal/materials"
)

func serveCmd() *cobra.Command {
	var flags commonFlags
	var noBuild bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the materials and serve them over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, runner, err := flags.setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(runner, log, cfg)
			if noBuild {
				m, err := materials.ReadFile(cfg.OutputPath)
				if err != nil {
					return err
				}
				srv.SetMaterials(m, nil)
				log.Info("loaded existing materials", "path", cfg.OutputPath, "records", m.Count())
			} else if _, err := srv.Rebuild(ctx); err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting notesgest", "port", cfg.Port)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&noBuild, "no-build", false, "serve the existing output file instead of rebuilding")
	return cmd
}
