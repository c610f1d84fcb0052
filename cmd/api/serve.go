package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"exampleapi/internal/config"
	handlers "exampleapi/internal/http/handler"
	"exampleapi/internal/logger"
	"exampleapi/internal/otel"
	"exampleapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, logger.Location(cfg.TimeZone))
	defer log.Sync() //nolint:errcheck

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		log.Error("tracing_setup_failed", zap.Error(err))
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	seeds, err := resolveSeeds(ctx, cfg)
	if err != nil {
		log.Error("seed_load_failed", zap.Error(err))
		return err
	}

	repo, db, err := openStore(ctx, cfg, log, seeds)
	if err != nil {
		log.Error("store_init_failed", zap.String("driver", cfg.StoreDriver), zap.Error(err))
		return err
	}
	var pinger handlers.Pinger
	if db != nil {
		defer db.Close()
		pinger = db
	}

	configureSwagger(cfg.AppHost)
	app, err := newApp(log, newRegistry(), pinger, service.NewExampleService(repo))
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting",
			zap.String("addr", addr),
			zap.String("store_driver", cfg.StoreDriver),
			zap.Int("seed_count", len(seeds)),
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server_failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		log.Error("server_shutdown_failed", zap.Error(err))
		return err
	}
	log.Info("server_stopped")
	return nil
}
