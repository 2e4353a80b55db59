package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mapapi/docs"
	"mapapi/internal/config"
	handlers "mapapi/internal/http/handler"
	"mapapi/internal/http/middleware"
	"mapapi/internal/logging"
	"mapapi/internal/otel"
	"mapapi/internal/repository/filesystem"
	"mapapi/internal/service"
	"mapapi/internal/storage"
)

// @title Map Document API
// @version 1.0
// @description Map image uploads and JSON level documents on the local filesystem.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logging.SetLocation(loc)

	shutdownTracing, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logging.Error(loc, "otel", "tracing_shutdown_failed", err, nil)
		}
	}()

	// Documents and map images live in separate directories; only maps are served statically
	docRepo, err := filesystem.NewDocumentFS(cfg.Storage.DocumentsDir)
	if err != nil {
		log.Fatalf("failed to prepare documents directory: %v", err)
	}
	mapStore, err := storage.NewLocal(cfg.Storage.MapsDir)
	if err != nil {
		log.Fatalf("failed to prepare maps directory: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register service metrics: %v", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	docSvc := service.NewDocumentService(docRepo, service.DocumentOptions{
		Strict:      cfg.Listing.Mode == config.ListModeStrict,
		Concurrency: cfg.Listing.Concurrency,
		Metrics:     metrics,
	})
	mapSvc := service.NewMapService(mapStore, loc, metrics)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimit(),
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(httpMetrics.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

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

	handlers.RegisterRoutes(app, docSvc, mapSvc, docRepo, mapStore)
	handlers.RegisterStatic(app, cfg.Storage.PublicDir, cfg.Storage.MapsDir)

	addr := ":" + cfg.Port
	go func() {
		logging.JSON(loc, map[string]any{
			"msg":           "server_starting",
			"addr":          addr,
			"documents_dir": cfg.Storage.DocumentsDir,
			"maps_dir":      cfg.Storage.MapsDir,
			"public_dir":    cfg.Storage.PublicDir,
			"list_mode":     cfg.Listing.Mode,
		})
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error(loc, "server", "shutdown_failed", err, nil)
	}
	logging.JSON(loc, map[string]any{"msg": "server_stopped"})
}
