package validator

import (
	"errors"
	"strings"
)

// ValidationError describes a single failed rule on a single field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates per-field failures for one validated value.
// All rules run before reporting so the client learns every failing field in
// a single response.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a failure.
func (ve *ValidationErrors) Add(err ValidationError) {
	ve.Errors = append(ve.Errors, err)
}

// IsEmpty reports whether any failure was recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve.Errors) == 0
}

// Fields groups failure messages by field name for structured error bodies.
func (ve ValidationErrors) Fields() map[string][]string {
	if len(ve.Errors) == 0 {
		return nil
	}
	fields := make(map[string][]string, len(ve.Errors))
	for _, e := range ve.Errors {
		fields[e.Field] = append(fields[e.Field], e.Message)
	}
	return fields
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err,
// or an empty set if err is of a different type.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return ValidationErrors{}
}
