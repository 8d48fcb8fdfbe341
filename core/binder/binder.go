// Package binder maps HTTP request data onto Go structs. The contact form
// submits as application/x-www-form-urlencoded from plain HTML and as
// application/json from the page script, so both binders share the same
// request struct via `form:` and `json:` tags.
package binder

import "net/http"

// Binder represents a function that binds HTTP request data to a Go value.
type Binder func(r *http.Request, v any) error
