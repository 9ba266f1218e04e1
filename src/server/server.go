package server

import (
	"Mergington-Activities/src/config"
	"Mergington-Activities/src/controllers"
	"Mergington-Activities/src/metrics"
	"Mergington-Activities/src/middleware"
	"Mergington-Activities/src/routes"
	"Mergington-Activities/src/services/activities"
	"Mergington-Activities/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// New wires the registry, middleware and routes into a fiber app.
// reg must also implement prometheus.Gatherer for /metrics.
func New(cfg *config.Config, log *zap.Logger, registry *activities.Registry, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ErrorHandler:          utils.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	m := metrics.New(reg)
	for name, a := range registry.List() {
		m.SetParticipants(name, len(a.Participants))
	}
	registry.OnSignup(m.SetParticipants)

	ac := controllers.NewActivityController(registry, log, m)
	routes.InitRoutes(app, ac, reg)

	return app
}
