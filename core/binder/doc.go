// Package binder provides HTTP request data binding for Go web applications.
// It covers two cooperating layers: struct-tag binders that populate whole
// request structs from JSON bodies, query strings and path parameters, and a
// typed binder registry that resolves individual parameters to the converter
// producing their declared type.
//
// # Struct-Tag Binders
//
// The binding functions share the signature
//
//	type Binder func(r *http.Request, v any) error
//
// and can be applied in sequence to populate one struct from several sources:
//
//	type UpdateProductRequest struct {
//		ID    int64  `path:"id"`
//		Force bool   `query:"force"`
//		Name  string `json:"name"`
//	}
//
//	binders := []binder.Binder{
//		binder.Path(chi.URLParam),
//		binder.Query(),
//		binder.JSON(),
//	}
//	for _, bind := range binders {
//		if err := bind(r, &req); err != nil {
//			// handle 400
//		}
//	}
//
// # Binder Registry
//
// The registry maps a parameter Descriptor to the ValueBinder that produces
// its value. Selection is keyed on the declared (produced) type and follows
// registration order, first match wins:
//
//	reg := binder.NewRegistry()
//	reg.Register(
//		binder.Entity[Product](store.FetchByID), // before built-ins to take priority
//		binder.ByteSlice(),
//	)
//	reg.Freeze() // read-only from here, safe for concurrent requests
//
//	desc := binder.Param[Product]("id", binder.SourcePath)
//	raw, _ := binder.Raw(r, desc, chi.URLParam)
//	bv, err := reg.BindValue(r.Context(), raw, desc)
//
// A resolution miss is not a request failure; BindValue falls back to the
// primitive-conversion binder. Binding failures (malformed base64, entity not
// found) come back as structured BoundValue field errors to be aggregated per
// field, while collaborator faults come back as plain errors for the error
// handler to turn into a 5xx.
//
// # Security
//
//   - Request body size limits (DefaultMaxJSONSize = 1MB)
//   - Strict JSON parsing with unknown field rejection
//   - String sanitization against CRLF injection and null bytes
package binder
