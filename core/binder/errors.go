package binder

import "errors"

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// that the binder doesn't support (e.g., text/plain for JSON binder).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or doesn't match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseQuery indicates query parameter parsing failed,
	// typically due to type conversion errors.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter extraction or conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrRegistryFrozen indicates a registration attempt after the registry
	// was frozen for request-time use.
	ErrRegistryFrozen = errors.New("binder registry is frozen")

	// ErrNilBinder indicates a nil value binder was passed to Register.
	ErrNilBinder = errors.New("nil value binder")

	// ErrEntityNotFound is the sentinel a lookup collaborator returns (or wraps)
	// when a well-formed key matches no record. The entity binder converts it
	// into a per-field binding failure instead of a transport error.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnsupportedSource indicates a value binder was asked to read from a
	// request location it cannot serve (e.g., body for single-value binders).
	ErrUnsupportedSource = errors.New("unsupported parameter source")
)
