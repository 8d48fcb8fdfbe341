package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/landing/core/handler"
)

// Option configures the router.
type Option[C handler.Context] func(*mux[C])

// WithContextFactory sets the factory used to build the custom request
// context for each request.
func WithContextFactory[C handler.Context](factory func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = factory
	}
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler[C handler.Context](eh handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if eh != nil {
			m.errorHandler = eh
		}
	}
}

// WithMiddleware registers global middleware applied to every route.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithLogger sets the logger used for panics that occur after the response
// has been written.
func WithLogger[C handler.Context](log *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if log != nil {
			m.logger = log
		}
	}
}
