package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/adapter/dto/common"
	"github.com/onboardhq/task-extractor/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	extractionHandler *ExtractionHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, extractionHandler *ExtractionHandler) *Router {
	return &Router{
		cfg:               cfg,
		extractionHandler: extractionHandler,
	}
}

// Setup configures all application routes. The extraction endpoint lives at
// the root path; that is the wire contract the browser front end calls.
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/extract-tasks", rt.extractionHandler.ExtractTasks)
}

// NewRateLimiterConfig builds the inbound rate limiter configuration. The
// deny handler keeps throttled responses on the same {"error","code"} wire
// shape every other failure uses.
func NewRateLimiterConfig(rps float64) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(rps)),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			appErr := errors.ErrTooManyRequests()
			return c.JSON(appErr.HTTPCode, common.ErrorResponse{
				Error: appErr.Message,
				Code:  appErr.Code.String(),
			})
		},
	}
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "unknown"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
