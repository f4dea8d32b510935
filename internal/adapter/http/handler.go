// Package http provides the HTTP handler layer for the business import API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qwikker/business-import/internal/adapter/http/response"
	"github.com/qwikker/business-import/internal/domain"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
	"github.com/qwikker/business-import/internal/usecase"
)

// ImportHandler handles HTTP requests for import preview endpoints.
type ImportHandler struct {
	useCase usecase.ImportPreviewUseCase
	timeout time.Duration
	log     *logger.Logger
}

// NewImportHandler creates a new ImportHandler with the given use case.
// A non-positive timeout leaves the request context untouched.
func NewImportHandler(uc usecase.ImportPreviewUseCase, timeout time.Duration, log *logger.Logger) *ImportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportHandler{
		useCase: uc,
		timeout: timeout,
		log:     log,
	}
}

// PreviewImport handles POST /api/v1/imports/preview
//
// @Summary Preview an import
// @Description Estimate how many external place-search requests importing a category around a point would cost
// @Tags imports
// @Accept json
// @Produce json
// @Param request body PreviewImportRequest true "Preview input"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/imports/preview [post]
func (h *ImportHandler) PreviewImport(c echo.Context) error {
	var req PreviewImportRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.useCase.Preview(ctx, ToDomainPreviewRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToPreviewResponse(result))
}

// ListCategories handles GET /api/v1/categories
//
// @Summary List import categories
// @Description List every business category with the place types it searches
// @Tags imports
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Router /api/v1/categories [get]
func (h *ImportHandler) ListCategories(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	summaries, err := h.useCase.Categories(ctx)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCategoriesResponse(summaries))
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ImportHandler) Health(c echo.Context) error {
	return response.Health(c)
}

func (h *ImportHandler) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request().Context()
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ImportHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ImportHandler) handleError(c echo.Context, err error) error {
	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	logger.FromContext(c.Request().Context(), h.log).Error().
		Err(err).
		Str("path", c.Path()).
		Msg("Unhandled error")

	return response.InternalServerError(c)
}
