package response

import (
	"net/http"

	"github.com/dmitrymomot/landing/core/handler"
)

// Error returns a handler response that propagates the given error to the
// router's error handler. Handlers use it to defer error rendering to the
// application-level error page or JSON error encoder.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
