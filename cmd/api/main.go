package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/onboardhq/task-extractor/docs"
	"github.com/onboardhq/task-extractor/internal/adapter/handler"
	extractionuse "github.com/onboardhq/task-extractor/internal/usecase/extraction"
	pkgai "github.com/onboardhq/task-extractor/pkg/ai"
	"github.com/onboardhq/task-extractor/pkg/config"
	pkgvalidator "github.com/onboardhq/task-extractor/pkg/validator"
)

// @title           Task Extractor API
// @version         1.0
// @description     Turns free-text meeting notes into structured, confidence-scored action items via a constrained AI call.

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Request IDs for log correlation
	e.Use(middleware.RequestID())

	// CORS middleware. The service is called directly from a browser-hosted
	// front end, so any origin is allowed along with the auth/content-type
	// headers the client passes through.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "x-client-info", "apikey"},
	}))

	// Inbound rate limiting, in-process. The AI gateway is the expensive hop;
	// shedding excess load here keeps one noisy client from burning quota.
	e.Use(middleware.RateLimiterWithConfig(handler.NewRateLimiterConfig(cfg.Server.RateLimit)))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize AI gateway client and extraction service
	log.Println("🤖 Initializing AI components...")
	gatewayClient := pkgai.NewGatewayClient(&cfg.AI)
	if cfg.AI.APIKey == "" {
		log.Println("⚠️  AI_GATEWAY_API_KEY is not set; extraction calls will fail until it is configured")
	}
	extractionService := extractionuse.NewService(gatewayClient, cfg.AI.Timeout, logger)
	extractionHandler := handler.NewExtractionHandler(extractionService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, extractionHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
