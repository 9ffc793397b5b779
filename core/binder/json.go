package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a JSON body binder function.
//
// It validates the Content-Type header, enforces a body size limit, parses in
// strict mode (unknown fields rejected, no trailing data) and sanitizes all
// string fields of the target struct.
//
// Example:
//
//	var req CreateProductRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// handle 400
//	}
func JSON() Binder {
	return func(r *http.Request, v any) error {
		// Fail fast if request context is already cancelled to avoid processing doomed requests
		ctx := r.Context()
		if ctx != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: context timeout", ErrFailedToParseJSON)
			default:
			}
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}

		// Strip charset and other parameters from Content-Type (e.g., "application/json; charset=utf-8")
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		// Read entire body with +1 byte to detect oversized requests efficiently
		limitedReader := io.LimitReader(r.Body, DefaultMaxJSONSize+1)
		body, err := io.ReadAll(limitedReader)
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}

		// Reject requests exceeding size limit to prevent DoS attacks
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(strings.NewReader(string(body)))
		decoder.DisallowUnknownFields() // Strict mode prevents typos and unexpected fields

		if err := decoder.Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		// Verify no trailing data exists after valid JSON to prevent injection attacks
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		// Apply security sanitization to prevent XSS and injection attacks
		if err := sanitizeJSONStruct(v); err != nil {
			return fmt.Errorf("%w: failed to sanitize input: %v", ErrFailedToParseJSON, err)
		}

		return nil
	}
}

// sanitizeJSONStruct recursively sanitizes all string fields in a struct.
func sanitizeJSONStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}

	return sanitizeReflectValue(rv.Elem())
}

// sanitizeReflectValue recursively sanitizes reflect.Value.
func sanitizeReflectValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizeStringValue(rv.String()))
		}

	case reflect.Struct:
		for i := range rv.NumField() {
			field := rv.Field(i)
			if field.CanSet() {
				if err := sanitizeReflectValue(field); err != nil {
					return err
				}
			}
		}

	case reflect.Slice, reflect.Array:
		// []byte fields carry binary payloads (e.g. decoded images), leave them alone
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := range rv.Len() {
			if err := sanitizeReflectValue(rv.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			if err := sanitizeReflectValue(rv.Elem()); err != nil {
				return err
			}
		}
	}

	return nil
}
