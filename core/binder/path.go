package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path
// parameter value, so the binder works with any routing library.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Example with chi router:
//
//	type ProductRequest struct {
//		ID int64 `path:"id"`
//	}
//
//	pathBinder := binder.Path(chi.URLParam)
//
//	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
//		var req ProductRequest
//		if err := pathBinder(r, &req); err != nil {
//			// handle 400
//		}
//	})
func Path(extractor func(r *http.Request, fieldName string) string) Binder {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToParsePath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParsePath)
		}

		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			// Skip unexported fields that reflection cannot modify
			if !field.CanSet() {
				continue
			}

			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				continue // Leave field as zero value when parameter is missing
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, fieldType.Name, err)
			}
		}

		return nil
	}
}
