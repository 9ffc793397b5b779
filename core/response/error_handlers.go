package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/bindkit/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError.
// Non-HTTP errors default to 500 so internal details never pick an
// accidental client-error status.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses. Server-side failures are
// reduced to the bare 5xx error so data-source faults and other internals
// never reach the client.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	if httpErr.Status >= http.StatusInternalServerError {
		httpErr.Details = nil
	}
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
