package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"practice/internal/http/middleware"
	"practice/internal/service"
)

const healthTimeout = 2 * time.Second

// RegisterRoutes attaches the product and operational routes to app.
// A nil gatherer leaves /metrics unmounted.
func RegisterRoutes(app *fiber.App, pc *ProductController, svc service.ProductService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	if gatherer != nil {
		app.Get(middleware.MetricsPath, Metrics(gatherer))
	}

	pc.Register(app)
}

// HealthCheck reports whether the product repository backend is reachable.
//
// @Summary  Readiness probe
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} errorPayload
// @Router   /health [get]
func HealthCheck(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := svc.Ready(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Metrics serves the Prometheus exposition format for gatherer.
func Metrics(gatherer prometheus.Gatherer) fiber.Handler {
	h := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(otelhttp.NewHandler(h, "metrics"))
}
