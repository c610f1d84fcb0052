package handler

import (
	"github.com/gofiber/fiber/v2"

	"exampleapi/internal/service"
)

// RegisterRoutes attaches the pages, probes and the examples resource to app.
// db may be nil when no database backs the store.
func RegisterRoutes(app *fiber.App, db Pinger, exampleSvc service.ExampleService) {
	app.Get("/", LandingPage())
	app.Get("/dashboard", DashboardPage())

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/examples", CreateExample(exampleSvc))
	app.Get("/examples", ListExamples(exampleSvc))
	app.Get("/examples/:id", GetExample(exampleSvc))
	app.Patch("/examples/:id", UpdateExample(exampleSvc))
	app.Delete("/examples/:id", DeleteExample(exampleSvc))
}
