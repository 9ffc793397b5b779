package validator_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/validator"
)

type createProduct struct {
	Name        string `json:"name" validate:"required;min:2;max:120"`
	Description string `json:"description" validate:"max:2000;not_contains:XYZ Widget"`
	Price       int64  `json:"price" validate:"positive"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid_struct_passes", func(t *testing.T) {
		t.Parallel()

		v := createProduct{Name: "Gizmo", Description: "a fine gizmo", Price: 1999}
		assert.NoError(t, validator.ValidateStruct(&v))
	})

	t.Run("forbidden_substring_fails", func(t *testing.T) {
		t.Parallel()

		v := createProduct{Name: "Gizmo", Description: "the best XYZ Widget clone", Price: 1}
		err := validator.ValidateStruct(&v)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve.Errors, 1)
		assert.Equal(t, "description", ve.Errors[0].Field)
	})

	t.Run("all_failures_are_aggregated", func(t *testing.T) {
		t.Parallel()

		v := createProduct{Name: "", Description: "", Price: -5}
		err := validator.ValidateStruct(&v)
		require.Error(t, err)

		fields := validator.ExtractValidationErrors(err).Fields()
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "price")
		assert.NotContains(t, fields, "description")
	})

	t.Run("field_names_follow_json_tags", func(t *testing.T) {
		t.Parallel()

		type payload struct {
			DisplayName string `json:"display_name,omitempty" validate:"required"`
		}

		err := validator.ValidateStruct(&payload{})
		require.Error(t, err)
		assert.Contains(t, validator.ExtractValidationErrors(err).Fields(), "display_name")
	})

	t.Run("multiple_rules_per_field", func(t *testing.T) {
		t.Parallel()

		v := createProduct{Name: "x", Price: 1}
		err := validator.ValidateStruct(&v)
		require.Error(t, err)

		fields := validator.ExtractValidationErrors(err).Fields()
		assert.Equal(t, []string{"must be at least 2 characters"}, fields["name"])
	})

	t.Run("non_struct_target_rejected", func(t *testing.T) {
		t.Parallel()

		var n int
		assert.Error(t, validator.ValidateStruct(&n))
		assert.Error(t, validator.ValidateStruct(createProduct{}))
	})

	t.Run("custom_validator", func(t *testing.T) {
		t.Parallel()

		validator.RegisterValidator("even", func(field string, value reflect.Value, _ []string) validator.Rule {
			return validator.Rule{
				Check: func() bool { return value.Int()%2 == 0 },
				Error: validator.ValidationError{Field: field, Message: "must be even"},
			}
		})

		type payload struct {
			Count int `json:"count" validate:"even"`
		}

		assert.NoError(t, validator.ValidateStruct(&payload{Count: 4}))

		err := validator.ValidateStruct(&payload{Count: 3})
		require.Error(t, err)
		assert.Contains(t, validator.ExtractValidationErrors(err).Fields(), "count")
	})
}
