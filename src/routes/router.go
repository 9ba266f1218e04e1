package routes

import (
	"Mergington-Activities/src/controllers"
	"Mergington-Activities/src/static"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const IndexPage = "/static/index.html"

func InitRoutes(app *fiber.App, ac *controllers.ActivityController, gatherer prometheus.Gatherer) {
	activityRoutes(app, ac)
	staticRoutes(app)

	app.Get("/health", ac.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
}

func staticRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(IndexPage, fiber.StatusTemporaryRedirect)
	})
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: static.FileSystem(),
	}))
}
