// Package validator provides struct-tag driven validation producing
// aggregated per-field errors.
//
// Rules live in the `validate` tag, separated by semicolon; parameters follow
// a colon:
//
//	type CreateProductRequest struct {
//		Name        string `json:"name" validate:"required;min:2;max:120"`
//		Description string `json:"description" validate:"not_contains:XYZ Widget"`
//		Price       int64  `json:"price" validate:"positive"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		ve := validator.ExtractValidationErrors(err)
//		// ve.Fields() -> map[field][]message for a structured 400 body
//	}
//
// All rules run before reporting, so a single response enumerates every
// failing field. Field names in errors follow the json tag when present.
//
// Custom rules are added with RegisterValidator; registration should happen
// during startup, before requests are served.
package validator
