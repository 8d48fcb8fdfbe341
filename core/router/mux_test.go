package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/handler"
	"github.com/dmitrymomot/landing/core/response"
	"github.com/dmitrymomot/landing/core/router"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouting(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by method and path", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.String("home")
		})
		r.Post("/contact", func(ctx *router.Context) handler.Response {
			return response.String("submitted")
		})

		w := serve(r, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "home", w.Body.String())

		w = serve(r, http.MethodPost, "/contact")
		assert.Equal(t, "submitted", w.Body.String())
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.String("home")
		})

		w := serve(r, http.MethodGet, "/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("known path wrong method returns 405 with Allow", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Post("/contact", func(ctx *router.Context) handler.Response {
			return response.String("submitted")
		})

		w := serve(r, http.MethodGet, "/contact")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "POST", w.Header().Get("Allow"))
	})

	t.Run("head falls back to get", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.String("home")
		})

		w := serve(r, http.MethodHead, "/")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wildcard matches prefix with longest mount winning", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/assets/*", func(ctx *router.Context) handler.Response {
			return response.String("assets")
		})
		r.Get("/assets/css/*", func(ctx *router.Context) handler.Response {
			return response.String("css")
		})

		w := serve(r, http.MethodGet, "/assets/js/app.js")
		assert.Equal(t, "assets", w.Body.String())

		w = serve(r, http.MethodGet, "/assets/css/style.css")
		assert.Equal(t, "css", w.Body.String())
	})

	t.Run("invalid pattern panics at registration", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.Panics(t, func() {
			r.Get("no-slash", func(ctx *router.Context) handler.Response {
				return response.String("x")
			})
		})
		assert.Panics(t, func() {
			r.Get("/ok", nil)
		})
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	appendHeader := func(value string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				resp := next(ctx)
				return func(w http.ResponseWriter, r *http.Request) error {
					w.Header().Add("X-Order", value)
					return resp(w, r)
				}
			}
		}
	}

	t.Run("global middleware wraps every route", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context](
			router.WithMiddleware(appendHeader("global")),
		)
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.String("ok")
		})

		w := serve(r, http.MethodGet, "/")
		assert.Equal(t, []string{"global"}, w.Header().Values("X-Order"))
	})

	t.Run("group middleware is scoped", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/open", func(ctx *router.Context) handler.Response {
			return response.String("open")
		})
		r.Group(func(g router.Router[*router.Context]) {
			g.Use(appendHeader("scoped"))
			g.Get("/scoped", func(ctx *router.Context) handler.Response {
				return response.String("scoped")
			})
		})

		w := serve(r, http.MethodGet, "/scoped")
		assert.Equal(t, []string{"scoped"}, w.Header().Values("X-Order"))

		w = serve(r, http.MethodGet, "/open")
		assert.Empty(t, w.Header().Values("X-Order"))
	})
}

func TestErrorHandling(t *testing.T) {
	t.Parallel()

	t.Run("default handler renders HTTPError as JSON", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/limited", func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrTooManyRequests)
		})

		w := serve(r, http.MethodGet, "/limited")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "too_many_requests")
	})

	t.Run("custom error handler receives handler errors", func(t *testing.T) {
		t.Parallel()

		var seen error
		r := router.New[*router.Context](
			router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
				seen = err
				ctx.ResponseWriter().WriteHeader(http.StatusBadGateway)
			}),
		)
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrBadRequest)
		})

		w := serve(r, http.MethodGet, "/")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		require.Error(t, seen)
	})

	t.Run("panicking handler does not kill the server", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/boom", func(ctx *router.Context) handler.Response {
			panic("kaboom")
		})

		w := serve(r, http.MethodGet, "/boom")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("nil response surfaces as internal error", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			return nil
		})

		w := serve(r, http.MethodGet, "/")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOnComplete(t *testing.T) {
	t.Parallel()

	t.Run("reports status after error handler renders", func(t *testing.T) {
		t.Parallel()

		var got int
		r := router.New[*router.Context]()
		r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				router.OnComplete(ctx, func(status int) { got = status })
				return next(ctx)
			}
		})
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.Error(response.ErrTooManyRequests)
		})

		w := serve(r, http.MethodGet, "/")
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, http.StatusTooManyRequests, got)
	})

	t.Run("unwritten response reported as 200", func(t *testing.T) {
		t.Parallel()

		var got int
		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			router.OnComplete(ctx, func(status int) { got = status })
			return func(w http.ResponseWriter, r *http.Request) error { return nil }
		})

		serve(r, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, got)
	})

	t.Run("callbacks run in registration order", func(t *testing.T) {
		t.Parallel()

		var order []string
		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			router.OnComplete(ctx, func(int) { order = append(order, "first") })
			router.OnComplete(ctx, func(int) { order = append(order, "second") })
			return response.String("ok")
		})

		serve(r, http.MethodGet, "/")
		assert.Equal(t, []string{"first", "second"}, order)
	})
}
