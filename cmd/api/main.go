package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"practice/docs"
	"practice/internal/config"
	handlers "practice/internal/http/handler"
	"practice/internal/http/middleware"
	"practice/internal/logging"
	tracing "practice/internal/otel"
	"practice/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Product API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, logging.Location(cfg.Location))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, "practice-api")
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	repo, closeRepo, err := newProductRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize product repository", zap.String("driver", cfg.Product.Driver), zap.Error(err))
	}
	defer closeRepo()

	svc := service.NewProductService(repo)
	ctrl := handlers.NewProductController(svc, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, ctrl, svc, reg)

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

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_starting", zap.String("addr", addr), zap.String("repository_driver", cfg.Product.Driver))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
	logger.Info("server_stopped")
}
