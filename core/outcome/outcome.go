package outcome

import (
	"net/http"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/validator"
)

// kind discriminates the Outcome variants. The zero value is deliberately
// invalid so an accidentally empty Outcome cannot resolve as a success.
type kind int

const (
	kindInvalidZero kind = iota
	kindValue
	kindStatus
	kindCreated
	kindNotFound
	kindValidation
	kindStream
)

// Outcome is the normalized result of application logic, prior to any
// HTTP-specific encoding. Exactly one variant is populated; the constructors
// are the only way to build one, which is this design's substitute for a
// native sum type.
//
// Handlers return an Outcome and let Resolve decide status codes, headers and
// body encoding. That keeps "did we get a value" apart from "what HTTP
// semantics to emit".
type Outcome struct {
	kind     kind
	value    any
	status   int
	location string
	fields   map[string][]string
	stream   <-chan any
}

// Value wraps a plain success value. It always resolves to 200 with the value
// serialized as the JSON body.
func Value(v any) Outcome {
	return Outcome{kind: kindValue, value: v}
}

// Status creates a status-only outcome with an empty body.
func Status(code int) Outcome {
	return Outcome{kind: kindStatus, status: code}
}

// StatusWith creates an outcome with an explicit status code and body.
func StatusWith(code int, body any) Outcome {
	return Outcome{kind: kindStatus, status: code, value: body}
}

// Created wraps a newly created resource. It resolves to 201 with the given
// location reference in the Location header and the resource as the body.
func Created(location string, v any) Outcome {
	return Outcome{kind: kindCreated, value: v, location: location}
}

// NotFound resolves to 404 with an empty body.
func NotFound() Outcome {
	return Outcome{kind: kindNotFound}
}

// Invalid wraps aggregated validation failures. It resolves to 400 with a
// structured body enumerating the failing fields.
func Invalid(ve validator.ValidationErrors) Outcome {
	return Outcome{kind: kindValidation, fields: ve.Fields()}
}

// InvalidFields is like Invalid but takes the field map directly, for callers
// that aggregate failures themselves (e.g. from binding).
func InvalidFields(fields map[string][]string) Outcome {
	return Outcome{kind: kindValidation, fields: fields}
}

// BindFailure wraps a single structured binding failure. Lookup-absence
// ("not found") resolves to 404; every other failure joins the per-field 400
// body. This is where binding failures acquire HTTP semantics, not in the
// binders themselves.
func BindFailure(fe binder.FieldError) Outcome {
	if fe.Message == "not found" {
		return NotFound()
	}
	return InvalidFields(map[string][]string{fe.Field: {fe.Message}})
}

// Stream wraps a finite, consume-once sequence of elements. It resolves to
// 200 with each element serialized and flushed independently, so the client
// starts consuming before production finishes and memory stays bounded. The
// producer must stop when the request context is cancelled.
//
// Callers materialize their sequence into a channel; there is no implicit
// conversion from abstract container types.
func Stream(items <-chan any) Outcome {
	return Outcome{kind: kindStream, stream: items}
}

// IsNotFound reports whether the outcome is the not-found variant.
func (o Outcome) IsNotFound() bool {
	return o.kind == kindNotFound
}

// StatusCode returns the HTTP status the outcome will resolve to.
func (o Outcome) StatusCode() int {
	switch o.kind {
	case kindValue, kindStream:
		return http.StatusOK
	case kindCreated:
		return http.StatusCreated
	case kindNotFound:
		return http.StatusNotFound
	case kindValidation:
		return http.StatusBadRequest
	case kindStatus:
		if o.status == 0 {
			return http.StatusOK
		}
		return o.status
	default:
		return http.StatusInternalServerError
	}
}
