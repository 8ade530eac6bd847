package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MartnzGO/Adattarhaz/internal/api"
	"github.com/MartnzGO/Adattarhaz/internal/api/handlers"
	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/forecast"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/internal/scheduler"
	"github.com/MartnzGO/Adattarhaz/internal/scheduler/jobs"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
	"github.com/MartnzGO/Adattarhaz/pkg/warehouse"
)

// serveCmd starts the API server for presentation shells.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the HTTP API for presentation shells.

Endpoints:
  GET  /health               - health check
  GET  /api/reports          - report catalog
  GET  /api/reports/{name}   - run a report, returns its draw plan
  POST /api/forecast         - polynomial revenue forecast
  GET  /ws                   - run-completed event feed

Example:
  go run ./cmd/dwhboard serve
  go run ./cmd/dwhboard serve --port 8086`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "override the configured port")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	log := logger.New(cfg)

	store := warehouse.New(cfg.Warehouse)

	// A missing warehouse degrades the service instead of blocking
	// startup; every report run re-checks on its own connection.
	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Warehouse.ConnectTimeout)
	if err := store.Ping(pingCtx); err != nil {
		log.WithError(err).Warn("warehouse not reachable, starting degraded")
	}
	cancel()

	cat := catalog.New()
	ldr := loader.New(store, log)
	engine := forecast.NewEngine(log)
	hub := api.NewHub(log)

	router := api.NewRouter(
		handlers.NewReportHandler(cat, ldr, hub, log),
		handlers.NewForecastHandler(cat, ldr, engine, hub, log),
		hub,
		cfg,
		log,
	)
	server := api.New(cfg, log, router)

	var sched *scheduler.Scheduler
	if cfg.Snapshot.Enabled {
		sched = scheduler.New(log)
		if err := sched.AddJob(jobs.NewSnapshotJob(cat, ldr, cfg.Snapshot, log)); err != nil {
			return fmt.Errorf("add snapshot job: %w", err)
		}
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if sched != nil {
			sched.Stop()
		}
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutdown signal received")
	}

	if sched != nil {
		sched.Stop()
	}
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
