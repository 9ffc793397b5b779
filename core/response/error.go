package response

import (
	"net/http"

	"github.com/dmitrymomot/bindkit/core/handler"
)

// Error returns a handler response that propagates the given error.
// This is useful when a handler wants to defer error rendering to the
// framework's error handler instead of encoding the error itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
