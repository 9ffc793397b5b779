package binder

import (
	"context"
	"reflect"
)

// primitiveBinder converts raw string values to basic Go types using the same
// conversion rules as the struct-tag binders. It is the default fallback when
// registry resolution finds no match.
type primitiveBinder struct{}

// Primitive returns the default primitive-conversion binder. It handles
// strings, integers, unsigned integers, floats and booleans.
func Primitive() ValueBinder {
	return primitiveBinder{}
}

func (primitiveBinder) Name() string { return "primitive" }

func (primitiveBinder) CanBind(d Descriptor) bool {
	if d.Type == nil {
		return false
	}
	switch d.Type.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Bool:
		return true
	}
	return false
}

func (b primitiveBinder) Bind(_ context.Context, raw RawValue, d Descriptor) (BoundValue, error) {
	if !raw.Present {
		// Missing value binds to the type's zero value; required-ness is a
		// validation concern, not a conversion concern.
		return Bound(reflect.Zero(d.Type).Interface()), nil
	}

	target := reflect.New(d.Type).Elem()
	if err := setFieldValue(target, d.Type, []string{raw.Value}); err != nil {
		return Failed(d.Name, err.Error()), nil
	}

	return Bound(target.Interface()), nil
}
