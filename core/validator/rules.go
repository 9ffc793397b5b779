package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				// For numbers, consider zero values as empty
				return !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return passRule()
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len(value.String()) >= min },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at least %d characters", min),
			},
		}
	case reflect.Slice, reflect.Array:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() >= min },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must have at least %d items", min),
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() >= min },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at least %d", min),
			},
		}
	case reflect.Float32, reflect.Float64:
		min, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() >= min },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at least %g", min),
			},
		}
	}
	return passRule()
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return passRule()
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return len(value.String()) <= max },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at most %d characters", max),
			},
		}
	case reflect.Slice, reflect.Array:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() <= max },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must have at most %d items", max),
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() <= max },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at most %d", max),
			},
		}
	case reflect.Float32, reflect.Float64:
		max, _ := strconv.ParseFloat(params[0], 64)
		return Rule{
			Check: func() bool { return value.Float() <= max },
			Error: ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be at most %g", max),
			},
		}
	}
	return passRule()
}

func positiveValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return value.Int() > 0
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				return value.Uint() > 0
			case reflect.Float32, reflect.Float64:
				return value.Float() > 0
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be positive",
		},
	}
}

func containsValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return passRule()
	}
	substr := params[0]
	return Rule{
		Check: func() bool { return strings.Contains(value.String(), substr) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %q", substr),
		},
	}
}

func notContainsValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return passRule()
	}
	substr := params[0]
	return Rule{
		Check: func() bool { return !strings.Contains(value.String(), substr) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not contain %q", substr),
		},
	}
}

func passRule() Rule {
	return Rule{Check: func() bool { return true }}
}
