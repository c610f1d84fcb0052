package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"exampleapi/docs"
	"exampleapi/internal/config"
	"exampleapi/internal/database"
	"exampleapi/internal/database/migration"
	handlers "exampleapi/internal/http/handler"
	"exampleapi/internal/http/middleware"
	"exampleapi/internal/model"
	"exampleapi/internal/repository"
	"exampleapi/internal/repository/memory"
	"exampleapi/internal/repository/postgres"
	"exampleapi/internal/seed"
	"exampleapi/internal/service"
	"exampleapi/internal/storage"
)

// resolveSeeds picks the initial records: a MinIO object, then a local
// file, then the built-in defaults.
func resolveSeeds(ctx context.Context, cfg *config.AppConfig) ([]model.Example, error) {
	switch {
	case cfg.Seed.ObjectKey != "":
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("init object storage: %w", err)
		}
		return seed.FromObject(ctx, objStore, cfg.Seed.ObjectKey)
	case cfg.Seed.File != "":
		return seed.FromFile(cfg.Seed.File)
	default:
		return seed.Default(), nil
	}
}

// openStore builds the repository for the configured driver. The returned
// *sql.DB is nil for the memory store.
func openStore(ctx context.Context, cfg *config.AppConfig, log *zap.Logger, seeds []model.Example) (repository.ExampleRepository, *sql.DB, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		return memory.NewExampleMemory(seeds), nil, nil
	case config.StorePostgres:
		pool, err := database.PoolFor(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		db, err := database.Open(ctx, pool)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host, seeds); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		return postgres.NewExamplePostgres(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver: %q", cfg.StoreDriver)
	}
}

// newRegistry returns a registry carrying the runtime collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// configureSwagger sets the host and schemes advertised by the OpenAPI doc.
// It runs once before the server starts, never per request.
func configureSwagger(host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
}

// newApp assembles the fiber application. pinger may be nil.
func newApp(log *zap.Logger, reg *prometheus.Registry, pinger handlers.Pinger, svc service.ExampleService) (*fiber.App, error) {
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "exampleapi",
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(fiberrecover.New())
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, pinger, svc)
	app.Get("/metrics", handlers.Metrics(reg))

	// host and schemes are fixed by configureSwagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
