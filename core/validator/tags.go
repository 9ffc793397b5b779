package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ValidatorFunc is a function that validates a value and returns a Rule.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

// Rule pairs a check with the error to report when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required":     requiredValidator,
		"min":          minValidator,
		"max":          maxValidator,
		"positive":     positiveValidator,
		"contains":     containsValidator,
		"not_contains": notContainsValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolon, parameters by colon:
//
//	type CreateProductRequest struct {
//		Name        string `validate:"required;min:2;max:120"`
//		Description string `validate:"not_contains:XYZ Widget"`
//		Price       int64  `validate:"positive"`
//	}
//
// It returns nil when all rules pass, or a ValidationErrors value aggregating
// every failing field.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errors ValidationErrors
	validateStructRecursive(rv, "", &errors)

	if errors.IsEmpty() {
		return nil
	}
	return errors
}

func validateStructRecursive(rv reflect.Value, prefix string, errors *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := fieldName(structField)
		if prefix != "" {
			fieldPath = prefix + "." + fieldPath
		}

		// Nested structs are always descended into
		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errors)
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errors)
				}
			} else {
				elem := field.Elem()
				if elem.Kind() == reflect.Struct && tag == "" {
					validateStructRecursive(elem, fieldPath, errors)
				} else if tag != "" {
					validateField(fieldPath, elem, tag, errors)
				}
			}
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errors)
	}
}

// fieldName prefers the json tag name so error bodies match the wire format.
func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}
	return f.Name
}

func validateField(fieldPath string, field reflect.Value, tag string, errors *ValidationErrors) {
	rules := strings.Split(tag, ";")

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range rules {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			paramStr := strings.TrimSpace(parts[1])
			if paramStr != "" {
				params = strings.Split(paramStr, ",")
				for i := range params {
					params[i] = strings.TrimSpace(params[i])
				}
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				errors.Add(rule.Error)
			}
		}
	}
}
