package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikker/business-import/internal/infrastructure/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithOutput(logger.Config{
		Level:       "debug",
		Format:      "json",
		ServiceName: "middleware-test",
	}, buf)
}

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log output should be valid JSON")
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID, "should generate request ID")
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	e := echo.New()
	existingID := "existing-request-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, existingID, rec.Header().Get(RequestIDHeader), "should propagate existing request ID")
	assert.Equal(t, existingID, GetRequestID(c))
}

func TestRequestID_ReplacesUnsafeIDs(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"uuid", "3f2b8c1e-8d4a-4c1b-9a57-2b1f0e6d9c3a", true},
		{"trace style", "trace:01HZX.span_7", true},
		{"max length", strings.Repeat("a", MaxRequestIDLength), true},
		{"too long", strings.Repeat("a", MaxRequestIDLength+1), false},
		{"newline injection", "abc\n{\"level\":\"error\"}", false},
		{"spaces", "abc def", false},
		{"non ascii", "zażółć", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestID()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, got, GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, 36, "replaced by a UUID")
			}
		})
	}
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c), "should return empty string when not set")
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/preview?dry=1", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "middleware-test", entry["service"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/imports/preview", entry["path"])
	assert.Equal(t, "dry=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_AttachesRequestLoggerToContext(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil), httptest.NewRecorder())
	c.Set("request_id", "ctx-req-id")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		logger.FromContext(c.Request().Context(), nil).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))

	inside := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, inside, "handler log should reach the middleware logger")
	assert.Equal(t, "ctx-req-id", inside["request_id"])
	assert.Equal(t, "middleware-test", inside["service"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "info"},
		{"client error", http.StatusBadRequest, "warn"},
		{"rate limited", http.StatusTooManyRequests, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := findEntry(logEntries(t, &logBuf), "HTTP request")
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c), "error is handed to echo's error handler")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, float64(404), entry["status"])
}

func TestRequestLogger_LogsClientIP(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, "203.0.113.7", entry["client_ip"])
}

func TestRequestLogger_NilLogger(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := RequestLogger(nil)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		panic("test panic")
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"An unexpected error occurred"}`, rec.Body.String())
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())
	c.Set("request_id", "stack-test-id")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		panic("stack trace test panic")
	})
	_ = handler(c)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine", "stack should contain goroutine info")
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		var slice []int
		_ = slice[10] // index out of range
		return nil
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.Contains(t, entry["panic"], "index out of range")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/normal", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String(), "should not log anything for normal requests")
}

func TestRecoverWithConfig_StackOptions(t *testing.T) {
	tests := []struct {
		name      string
		config    RecoveryConfig
		wantStack bool
		maxLen    int
	}{
		{"print disabled", RecoveryConfig{DisablePrintStack: true}, false, 0},
		{"current goroutine only", RecoveryConfig{DisableStackAll: true, StackSize: 256}, true, 256},
		{"zero size falls back to default", RecoveryConfig{}, true, DefaultRecoveryConfig().StackSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

			handler := RecoverWithConfig(newTestLogger(&logBuf), tt.config)(func(c echo.Context) error {
				panic("config test")
			})
			_ = handler(c)

			entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
			require.NotNil(t, entry)

			if !tt.wantStack {
				assert.NotContains(t, entry, "stack", "stack should not be logged when disabled")
				return
			}
			stack, ok := entry["stack"].(string)
			require.True(t, ok)
			assert.NotEmpty(t, stack)
			assert.LessOrEqual(t, len(stack), tt.maxLen)
		})
	}
}

// =====================================================
// Rate Limit Middleware Tests
// =====================================================

func TestIPRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 3, nil)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("198.51.100.1"), "request %d within burst", i+1)
	}
	assert.False(t, limiter.Allow("198.51.100.1"), "burst exhausted")
	assert.True(t, limiter.Allow("198.51.100.2"), "other clients have their own bucket")
}

func TestIPRateLimiter_CleanupEvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(0.001, 1, nil)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		limiter.Allow(fmt.Sprintf("198.51.100.%d", i))
	}
	require.Equal(t, 100, limiter.Len())

	now = now.Add(5 * time.Minute)
	assert.True(t, limiter.Allow("203.0.113.1"), "fresh client")
	assert.False(t, limiter.Allow("198.51.100.7"), "client seen again keeps its spent bucket")

	now = now.Add(6 * time.Minute)
	removed := limiter.Cleanup(10 * time.Minute)

	assert.Equal(t, 99, removed)
	assert.Equal(t, 2, limiter.Len())
	assert.False(t, limiter.Allow("198.51.100.7"), "recently seen client survives cleanup")
	assert.True(t, limiter.Allow("198.51.100.8"), "evicted client starts with a new bucket")
}

func TestIPRateLimiter_RunCleanupStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1, nil)
	limiter.Allow("198.51.100.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx, time.Millisecond, time.Nanosecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return limiter.Len() == 0 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}

func TestIPRateLimiter_SpoofedHeadersWithDirectExtractor(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2, nil)

	e := echo.New()
	e.IPExtractor = IPExtractor(false)
	e.Use(limiter.Middleware())
	e.GET("/api/v1/categories", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.RemoteAddr = "192.0.2.50:40000"
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set(echo.HeaderXRealIP, fmt.Sprintf("10.0.1.%d", i))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
	assert.Equal(t, 1, limiter.Len(), "forged headers do not create buckets")
}

func TestIPExtractor_TrustProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:40000"
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.9")

	assert.Equal(t, "203.0.113.9", IPExtractor(true)(req))
	assert.Equal(t, "10.0.0.1", IPExtractor(false)(req))
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	e.Use(NewIPRateLimiter(0.001, 2, newTestLogger(&logBuf)).Middleware())
	e.GET("/api/v1/categories", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.10").Code)
	assert.Equal(t, http.StatusOK, send("192.0.2.10").Code)

	rec := send("192.0.2.10")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"code":"rate_limited","message":"Too many requests, slow down"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, send("192.0.2.11").Code)

	entry := findEntry(logEntries(t, &logBuf), "Rate limit exceeded")
	require.NotNil(t, entry)
	assert.Equal(t, "192.0.2.10", entry["client_ip"])
	assert.Equal(t, "warn", entry["level"])
}

// =====================================================
// Integration Tests - Middleware Chain
// =====================================================

func TestMiddlewareChain_IntegrationOrder(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, reqID, entry["request_id"])
}

func TestMiddlewareChain_PanicRecoveryWithLogging(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/panic", func(c echo.Context) error {
		panic("integration test panic")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)

	entries := logEntries(t, &logBuf)
	panicEntry := findEntry(entries, "Panic recovered")
	require.NotNil(t, panicEntry)
	assert.Equal(t, reqID, panicEntry["request_id"])

	reqEntry := findEntry(entries, "HTTP request")
	require.NotNil(t, reqEntry)
	assert.Equal(t, float64(500), reqEntry["status"])
}

func TestSetupWithConfig_AppliesCustomConfig(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	SetupWithConfig(e, newTestLogger(&logBuf), RecoveryConfig{DisablePrintStack: true})

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	panicEntry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, panicEntry, "should have panic log entry")
	assert.NotContains(t, panicEntry, "stack", "stack should be disabled via config")
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	var logBuf bytes.Buffer

	chain := Chain(newTestLogger(&logBuf), DefaultRecoveryConfig())
	assert.Len(t, chain, 3, "Chain should return 3 middleware functions")

	e := echo.New()
	g := e.Group("/api", chain...)
	g.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "chain test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
