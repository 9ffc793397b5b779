package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value parameters
//   - Pointers for optional fields
//
// Example:
//
//	type ListRequest struct {
//		Page     int      `query:"page"`
//		PageSize int      `query:"page_size"`
//		Tags     []string `query:"tags"` // ?tags=go&tags=web or ?tags=go,web
//	}
//
//	var req ListRequest
//	if err := binder.Query()(r, &req); err != nil {
//		// handle 400
//	}
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
