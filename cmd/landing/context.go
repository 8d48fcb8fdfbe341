package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/landing/core/binder"
	"github.com/dmitrymomot/landing/core/form"
	"github.com/dmitrymomot/landing/core/sanitizer"
)

// Context is the application request context. It delegates context.Context
// behavior to the request's context and adds form binding.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

// Deadline implements context.Context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done implements context.Context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err implements context.Context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value implements context.Context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// WantsJSON reports whether the client expects a JSON response. The contact
// form is progressively enhanced: the fetch-based script sends and accepts
// JSON, plain form posts accept HTML.
func (c *Context) WantsJSON() bool {
	if strings.Contains(c.r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.Contains(c.r.Header.Get("Content-Type"), "application/json")
}

// Bind parses the request body into v, sanitizes string fields via
// "sanitize:" tags, and validates via "validate:" tags. Validation failures
// are returned as form.ValidationErrors.
//
// Example usage in handlers:
//
//	var sub contact.Submission
//	if err := ctx.Bind(&sub); err != nil { ... }
func (c *Context) Bind(v any) error {
	bind := binder.Form()
	if strings.Contains(c.r.Header.Get("Content-Type"), "application/json") {
		bind = binder.JSON()
	}
	if err := bind(c.r, v); err != nil {
		return err
	}

	if err := sanitizer.SanitizeStruct(v); err != nil {
		return err
	}

	if err := form.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// newContext is the router's context factory.
func newContext() func(http.ResponseWriter, *http.Request) *Context {
	return func(w http.ResponseWriter, r *http.Request) *Context {
		return &Context{w: w, r: r}
	}
}
