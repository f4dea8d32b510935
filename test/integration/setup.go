// Package integration provides helpers and integration tests for the business import system.
// Integration tests verify that components work together correctly, including
// HTTP middleware, handlers, the preview use case, and category catalogs.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/qwikker/business-import/internal/adapter/http"
	"github.com/qwikker/business-import/internal/adapter/http/middleware"
	"github.com/qwikker/business-import/internal/adapter/http/response"
	"github.com/qwikker/business-import/internal/domain"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
	"github.com/qwikker/business-import/internal/infrastructure/timeutil"
	"github.com/qwikker/business-import/internal/usecase"
)

// FixedNow is the time every integration use case reports as generatedAt.
var FixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// ServerOptions tunes the test server wiring.
type ServerOptions struct {
	// Timeout is the per-request preview timeout (0 disables it)
	Timeout time.Duration

	// RateLimitRPS enables the per-IP limiter when positive
	RateLimitRPS   float64
	RateLimitBurst int

	// LogOutput receives JSON logs; nil discards them
	LogOutput io.Writer
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ImportHandler
}

// NewTestServer creates a new test server with the given use case and no rate limit.
func NewTestServer(uc usecase.ImportPreviewUseCase) *TestServer {
	return NewTestServerWithOptions(uc, ServerOptions{Timeout: time.Second})
}

// NewTestServerWithOptions creates a test server wired like cmd/server.
func NewTestServerWithOptions(uc usecase.ImportPreviewUseCase, opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := NewLogger(opts.LogOutput)
	middleware.Setup(e, log)

	var apiMiddleware []echo.MiddlewareFunc
	if opts.RateLimitRPS > 0 {
		apiMiddleware = append(apiMiddleware,
			middleware.NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, log).Middleware())
	}

	handler := httpAdapter.NewImportHandler(uc, opts.Timeout, log)
	httpAdapter.RegisterRoutesWithMiddleware(e, handler, apiMiddleware...)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewLogger returns a debug-level JSON logger writing to w, or a no-op logger for nil.
func NewLogger(w io.Writer) *logger.Logger {
	if w == nil {
		return logger.Nop()
	}
	return logger.NewWithOutput(logger.Config{
		Level:       "debug",
		Format:      "json",
		ServiceName: "integration-test",
	}, w)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     string
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewReader([]byte(req.RawBody))
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil || req.RawBody != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PreviewRequest posts a preview body.
func (ts *TestServer) PreviewRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/imports/preview",
		Body:   body,
	})
}

// CategoriesRequest lists categories.
func (ts *TestServer) CategoriesRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/categories",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePreview parses the response body as a PreviewResponse.
func (r *Response) ParsePreview() (*httpAdapter.PreviewResponse, error) {
	var resp httpAdapter.PreviewResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseCategories parses the response body as a CategoriesResponse.
func (r *Response) ParseCategories() (*httpAdapter.CategoriesResponse, error) {
	var resp httpAdapter.CategoriesResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// PreviewBody is a helper struct for building preview request bodies.
type PreviewBody struct {
	Category     string         `json:"category"`
	RadiusMeters int            `json:"radiusMeters"`
	Center       *domain.LatLng `json:"center,omitempty"`
}

// Cheltenham is a convenient real-world center.
var Cheltenham = domain.LatLng{Lat: 51.8994, Lng: -2.0783}

// CreateUseCase creates a use case over catalog with a fixed clock.
func CreateUseCase(catalog domain.CategoryCatalog) usecase.ImportPreviewUseCase {
	return CreateUseCaseWithConfig(catalog, &usecase.Config{})
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
// A nil clock is replaced by a MockClock frozen at FixedNow.
func CreateUseCaseWithConfig(catalog domain.CategoryCatalog, config *usecase.Config) usecase.ImportPreviewUseCase {
	if config == nil {
		config = &usecase.Config{}
	}
	if config.Clock == nil {
		config.Clock = timeutil.NewMockClock(FixedNow)
	}
	return usecase.NewImportPreviewUseCase(catalog, config)
}
