package main

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"legaldocs/docs"
	"legaldocs/internal/http/handler"
	"legaldocs/internal/http/middleware"
)

type appDeps struct {
	handler.Dependencies
	HTTPMetrics *middleware.PrometheusMiddleware
	Gatherer    prometheus.Gatherer
}

// untraced paths are operational endpoints polled by the platform.
var untraced = map[string]bool{
	"/metrics": true,
	"/health":  true,
	"/healthz": true,
}

func newApp(deps appDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handler.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return untraced[c.Path()]
	})))
	app.Use(middleware.Logger(deps.Log))
	app.Use(deps.HTTPMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handler.RegisterRoutes(app, deps.Dependencies)
	return app
}
