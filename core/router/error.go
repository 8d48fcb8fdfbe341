package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/landing/core/handler"
	"github.com/dmitrymomot/landing/core/response"
)

// Routing error sentinels surfaced through the error handler.
var (
	ErrNotFound         = response.ErrNotFound
	ErrMethodNotAllowed = response.ErrMethodNotAllowed
	ErrNilResponse      = errors.New("router: handler returned nil response")
	ErrNilHandler       = errors.New("router: nil handler")
	ErrInvalidPattern   = errors.New("router: pattern must begin with '/'")
	ErrNoContextFactory = errors.New("router: context factory is required for custom context types")
)

// panicError wraps a recovered panic value with its stack trace.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// defaultErrorHandler renders errors as JSON. HTTPError values keep their
// status and code; everything else becomes a 500 without internal details.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	httpErr := response.ErrInternalServerError
	var respErr response.HTTPError
	if errors.As(err, &respErr) {
		httpErr = respErr
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Status)
	if encErr := json.NewEncoder(w).Encode(httpErr); encErr != nil {
		http.Error(w, httpErr.Message, httpErr.Status)
	}
}
