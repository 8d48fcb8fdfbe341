package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/handler"
	"github.com/dmitrymomot/landing/core/response"
	"github.com/dmitrymomot/landing/core/router"
	"github.com/dmitrymomot/landing/middleware"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
)

// execute runs a handler wrapped with the given middleware against a request.
func execute(t *testing.T, mw handler.Middleware[*router.Context], h handler.HandlerFunc[*router.Context], r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	ctx := router.NewContext(w, r)

	resp := mw(h)(ctx)
	require.NotNil(t, resp)
	require.NoError(t, resp(w, r))
	return w
}

func okHandler(ctx *router.Context) handler.Response {
	return response.String("ok")
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid and sets header", func(t *testing.T) {
		t.Parallel()

		var captured string
		h := func(ctx *router.Context) handler.Response {
			captured, _ = middleware.GetRequestID(ctx)
			return response.String("ok")
		}

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := execute(t, middleware.RequestID[*router.Context](), h, r)

		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses incoming id when configured", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			UseExisting: true,
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "upstream-id")
		w := execute(t, mw, okHandler, r)

		assert.Equal(t, "upstream-id", w.Header().Get("X-Request-ID"))
	})
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	var captured string
	h := func(ctx *router.Context) handler.Response {
		captured, _ = middleware.GetClientIP(ctx)
		return response.String("ok")
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.1")
	r.RemoteAddr = "192.0.2.10:54321"
	execute(t, middleware.ClientIP[*router.Context](), h, r)

	assert.Equal(t, "198.51.100.1", captured)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	// The logging middleware reports the status the mux actually sent,
	// so requests have to travel through a real router.
	serve := func(mw handler.Middleware[*router.Context], h handler.HandlerFunc[*router.Context], r *http.Request) *httptest.ResponseRecorder {
		mux := router.New[*router.Context](router.WithMiddleware(mw))
		mux.Handle(r.Method, r.URL.Path, h)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)
		return w
	}

	t.Run("logs completed request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		mw := middleware.LoggingWithLogger[*router.Context](log)
		r := httptest.NewRequest(http.MethodGet, "/pricing", nil)
		serve(mw, okHandler, r)

		out := buf.String()
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, `"path":"/pricing"`)
		assert.Contains(t, out, `"status_code":200`)
	})

	t.Run("logs status rendered by error handler", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrTooManyRequests)
		}

		mw := middleware.LoggingWithLogger[*router.Context](log)
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		w := serve(mw, h, r)

		require.Equal(t, http.StatusTooManyRequests, w.Code)

		out := buf.String()
		assert.Contains(t, out, `"status_code":429`)
		assert.Contains(t, out, `"level":"WARN"`)
	})

	t.Run("escalates level for server errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrInternalServerError)
		}

		mw := middleware.LoggingWithLogger[*router.Context](log)
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		w := serve(mw, h, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		out := buf.String()
		assert.Contains(t, out, `"status_code":500`)
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, `"error"`)
	})

	t.Run("skip function bypasses logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		mw := middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/healthz"
			},
		})
		r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		serve(mw, okHandler, r)

		assert.Empty(t, buf.String())
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	newLimiter := func(t *testing.T, capacity int) ratelimiter.RateLimiter {
		t.Helper()
		limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       capacity,
			RefillRate:     capacity,
			RefillInterval: time.Hour,
		})
		require.NoError(t, err)
		return limiter
	}

	t.Run("allows within limit and sets headers", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RateLimit[*router.Context](middleware.RateLimitConfig{
			Limiter:    newLimiter(t, 5),
			SetHeaders: true,
		})

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = "192.0.2.10:1234"
		w := execute(t, mw, okHandler, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("rejects over limit with retry-after", func(t *testing.T) {
		t.Parallel()

		mw := middleware.RateLimit[*router.Context](middleware.RateLimitConfig{
			Limiter:    newLimiter(t, 1),
			SetHeaders: true,
		})

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = "192.0.2.11:1234"

		w := execute(t, mw, okHandler, r)
		require.Equal(t, http.StatusOK, w.Code)

		w = execute(t, mw, okHandler, r)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("panics without limiter", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			middleware.RateLimit[*router.Context](middleware.RateLimitConfig{})
		})
	})
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	t.Run("balanced defaults", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := execute(t, middleware.SecurityHeaders[*router.Context](), okHandler, r)

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
		assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
		assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("development disables hsts", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.BalancedSecurity
		cfg.IsDevelopment = true

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := execute(t, middleware.SecurityHeadersWithConfig[*router.Context](cfg), okHandler, r)

		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("custom headers applied", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.SecurityHeadersConfig{
			CustomHeaders: map[string]string{"X-Robots-Tag": "noindex"},
		}

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := execute(t, middleware.SecurityHeadersWithConfig[*router.Context](cfg), okHandler, r)

		assert.Equal(t, "noindex", w.Header().Get("X-Robots-Tag"))
	})
}
