package binder

// FieldError is a structured binding failure for a single parameter.
// It is aggregated into a client-error outcome rather than raised as a
// transport error, so one request can report several failing fields at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// BoundValue is the result of binding one parameter: either a successfully
// converted typed value or a structured failure. Collaborator faults
// (timeouts, broken connections) are not BoundValues; binders return those as
// plain errors so they surface as 5xx instead of validation noise.
type BoundValue struct {
	Value   any
	Invalid *FieldError
}

// Bound wraps a successfully converted value.
func Bound(v any) BoundValue {
	return BoundValue{Value: v}
}

// Failed creates a binding failure for the named field.
func Failed(field, message string) BoundValue {
	return BoundValue{Invalid: &FieldError{Field: field, Message: message}}
}

// OK reports whether binding produced a usable value.
func (bv BoundValue) OK() bool {
	return bv.Invalid == nil
}
