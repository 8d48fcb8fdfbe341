package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/landing/core/response"
	"github.com/dmitrymomot/landing/theme"
)

// ErrorPageData is the data structure for error pages.
type ErrorPageData struct {
	Title      string
	Theme      theme.Theme
	StatusCode int
	Message    string
}

// errorHandler renders HTML error pages, falling back to JSON for clients
// that asked for it.
func errorHandler(tmpl *template.Template) func(ctx *Context, err error) {
	return func(ctx *Context, err error) {
		data := ErrorPageData{
			Title:      "Internal Server Error",
			Theme:      theme.Light,
			StatusCode: http.StatusInternalServerError,
			Message:    "Something went wrong",
		}

		var httpErr response.HTTPError
		if errors.As(err, &httpErr) {
			data.StatusCode = httpErr.Status
			data.Title = httpErr.Code
			if httpErr.Message != "" {
				data.Message = httpErr.Message
			} else {
				data.Message = http.StatusText(httpErr.Status)
			}
		}

		if ctx.WantsJSON() {
			response.Render(ctx, response.JSONWithStatus(map[string]any{
				"error":   data.Title,
				"message": data.Message,
			}, data.StatusCode))
			return
		}

		ctx.ResponseWriter().Header().Set("Content-Type", "text/html; charset=utf-8")
		ctx.ResponseWriter().WriteHeader(data.StatusCode)

		if err := tmpl.Execute(ctx.ResponseWriter(), data); err != nil {
			http.Error(ctx.ResponseWriter(), data.Message, data.StatusCode)
		}
	}
}
