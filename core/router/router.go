// Package router provides a small typed HTTP router with custom context
// support, centralized error handling, and panic recovery. Routes are
// matched on method and exact path; a trailing "/*" suffix matches a
// path prefix (used for static asset mounts).
package router

import (
	"net/http"

	"github.com/dmitrymomot/landing/core/handler"
)

// Router is the routing interface for handling HTTP requests.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])

	// Handle registers a handler for the given method and pattern.
	Handle(method, pattern string, h handler.HandlerFunc[C])

	// Use appends middleware applied to every route registered afterwards.
	Use(middlewares ...handler.Middleware[C])

	// With returns a router view that applies additional middleware to
	// routes registered through it.
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Group calls fn with a router view, scoping middleware to the routes
	// registered inside fn.
	Group(fn func(r Router[C])) Router[C]
}

// New creates a router with the given options. A context factory is required
// unless C is *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
