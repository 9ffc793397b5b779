package outcome

import (
	"net/http"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/response"
)

// validationBody is the structured error body for a 400 response.
type validationBody struct {
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields"`
}

// Resolve normalizes an Outcome into a renderable response: a single
// (status, headers, body) decision point for everything application logic
// returns.
func Resolve(o Outcome) handler.Response {
	switch o.kind {
	case kindValue:
		return response.JSON(o.value)

	case kindStatus:
		if o.value == nil {
			return response.Status(o.StatusCode())
		}
		return response.JSONWithStatus(o.value, o.StatusCode())

	case kindCreated:
		return response.WithHeader(
			response.JSONWithStatus(o.value, http.StatusCreated),
			"Location", o.location,
		)

	case kindNotFound:
		return response.Status(http.StatusNotFound)

	case kindValidation:
		return response.JSONWithStatus(validationBody{
			Code:   "validation_failed",
			Fields: o.fields,
		}, http.StatusBadRequest)

	case kindStream:
		return response.StreamJSON(o.stream)

	default:
		// Zero-value Outcome: refuse to guess, surface as a server error
		return response.Error(response.ErrInternalServerError)
	}
}
