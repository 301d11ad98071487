// Package serve implements the HTTP API command. It serves resolution,
// validation, metadata, and plan-summary endpoints plus Prometheus metrics,
// and can keep build artifacts fresh with a background rebuild schedule.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ezhulati/choose-my-power-sub003/cmd/common"
	"github.com/ezhulati/choose-my-power-sub003/internal/api"
	"github.com/ezhulati/choose-my-power-sub003/internal/metrics"
	"github.com/ezhulati/choose-my-power-sub003/internal/rebuild"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// shutdownTimeout bounds graceful connection draining on exit.
const shutdownTimeout = 10 * time.Second

// Command returns the serve command.
func Command(flags common.FlagSource) *cobra.Command {
	var rebuildSchedule string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing engine HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := flags.Deps()
			if err != nil {
				return err
			}

			engine, err := common.NewEngine(deps)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			engineMetrics := metrics.New(registry)

			server := api.NewServer(api.Deps{
				Logger:    deps.Logger,
				Registry:  engine.Registry,
				Resolver:  engine.Resolver,
				Planner:   engine.Planner,
				Generator: engine.Generator,
				Metrics:   engineMetrics,
				Gatherer:  registry,
				Server:    deps.Config.Server,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if rebuildSchedule != "" {
				scheduler := rebuild.NewScheduler(
					rebuild.NewPipeline(
						engine.Registry,
						engine.Resolver,
						engine.Planner,
						engine.Market,
						sitemap.NewEmitter(deps.Config.Site.BaseURL, deps.Logger, engineMetrics),
						rebuild.NewArtifacts(deps.Config.Sitemap.OutDir),
						deps.Config.Site.BaseURL,
						deps.Logger,
						engineMetrics,
					),
					rebuildSchedule,
					deps.Logger,
				)

				if startErr := scheduler.Start(ctx); startErr != nil {
					return startErr
				}
				defer scheduler.Stop()
			}

			errCh := make(chan error, 1)

			go func() {
				deps.Logger.Info("API server listening", "address", server.Addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				deps.Logger.Info("Shutting down API server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
					return fmt.Errorf("shutdown: %w", shutdownErr)
				}

				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}

				return fmt.Errorf("serve: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&rebuildSchedule, "rebuild-schedule", "",
		"cron schedule for background regeneration (empty disables)")

	return cmd
}
