package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all import API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ImportHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// versioned API group only. The health check stays unthrottled.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ImportHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/categories", h.ListCategories)

	imports := api.Group("/imports")
	imports.POST("/preview", h.PreviewImport)
}
