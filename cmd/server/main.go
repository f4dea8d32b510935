// Package main is the entry point for the business import preview service.
//
//	@title			Business Import Preview API
//	@version		1.0.0
//	@description	Estimates the external place-search cost of importing a business category around a location before any quota is spent.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/qwikker/business-import/docs"

	// Application layers
	importhttp "github.com/qwikker/business-import/internal/adapter/http"
	"github.com/qwikker/business-import/internal/adapter/http/middleware"
	"github.com/qwikker/business-import/internal/catalog"
	"github.com/qwikker/business-import/internal/config"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
	"github.com/qwikker/business-import/internal/infrastructure/timeutil"
	"github.com/qwikker/business-import/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	cat, err := catalog.Load(cfg.Preview.CategoryConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Preview.CategoryConfigPath).Msg("Failed to load category catalog")
	}
	log.Info().
		Int("categories", len(cat.All(context.Background()))).
		Bool("override", cfg.Preview.CategoryConfigPath != "").
		Msg("Category catalog loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.IPExtractor = middleware.IPExtractor(cfg.Server.TrustProxy)

	recovery := middleware.DefaultRecoveryConfig()
	recovery.DisableStackAll = cfg.IsProduction()
	middleware.SetupWithConfig(e, log, recovery)

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	setupRoutes(bgCtx, e, cfg, cat, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg, log)
}

// setupRoutes wires the use case, handler, and rate limiter into the router.
func setupRoutes(ctx context.Context, e *echo.Echo, cfg *config.Config, cat *catalog.Catalog, log *logger.Logger) {
	previewUseCase := usecase.NewImportPreviewUseCase(cat, &usecase.Config{
		WarningThreshold: cfg.Preview.WarningThreshold,
		Clock:            timeutil.NewRealClock(),
		Logger:           log,
	})

	handler := importhttp.NewImportHandler(previewUseCase, cfg.Preview.Timeout, log)

	var apiMiddleware []echo.MiddlewareFunc
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		go limiter.RunCleanup(ctx, cfg.RateLimit.ClientTTL/2, cfg.RateLimit.ClientTTL)
		apiMiddleware = append(apiMiddleware, limiter.Middleware())
	}
	importhttp.RegisterRoutesWithMiddleware(e, handler, apiMiddleware...)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
