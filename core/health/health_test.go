package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/health"
	"github.com/dmitrymomot/landing/core/router"
)

func newCtx() (*router.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	return router.NewContext(w, r), w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	ctx, w := newCtx()
	resp := health.Liveness(ctx)
	require.NoError(t, resp(w, ctx.Request()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	ctx, w := newCtx()
	resp := health.NoContent(ctx)
	require.NoError(t, resp(w, ctx.Request()))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	t.Run("ready when all checks pass", func(t *testing.T) {
		t.Parallel()

		h := health.Readiness[*router.Context](discardLogger(),
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		)

		ctx, w := newCtx()
		require.NoError(t, h(ctx)(w, ctx.Request()))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("ready with no checks registered", func(t *testing.T) {
		t.Parallel()

		h := health.Readiness[*router.Context](discardLogger())

		ctx, w := newCtx()
		require.NoError(t, h(ctx)(w, ctx.Request()))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failing check propagates service unavailable", func(t *testing.T) {
		t.Parallel()

		h := health.Readiness[*router.Context](discardLogger(),
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("redis down") },
		)

		ctx, w := newCtx()
		err := h(ctx)(w, ctx.Request())
		require.Error(t, err)
		assert.Contains(t, err.Error(), http.StatusText(http.StatusServiceUnavailable))
	})
}
