package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetinsight-team/meeting-insight/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	uploadHandler *Upload
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, uploadHandler *Upload) *Router {
	return &Router{
		cfg:           cfg,
		uploadHandler: uploadHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.POST("/upload", rt.uploadHandler.Handle)
}

// root returns a service banner
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "AI Meeting Transcriber API is running",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
