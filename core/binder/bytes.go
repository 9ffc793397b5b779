package binder

import (
	"context"
	"encoding/base64"
	"reflect"
)

var byteSliceType = reflect.TypeFor[[]byte]()

// byteSliceBinder decodes base64 text into a raw byte slice.
type byteSliceBinder struct{}

// ByteSlice returns a binder that produces []byte parameters from standard
// base64-encoded input. Invalid base64 yields a structured field failure and
// never a partial value. No external I/O is involved.
func ByteSlice() ValueBinder {
	return byteSliceBinder{}
}

func (byteSliceBinder) Name() string { return "base64" }

func (byteSliceBinder) CanBind(d Descriptor) bool {
	return d.Type == byteSliceType
}

func (byteSliceBinder) Bind(_ context.Context, raw RawValue, d Descriptor) (BoundValue, error) {
	if !raw.Present {
		return Bound([]byte(nil)), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(raw.Value)
	if err != nil {
		return Failed(d.Name, "invalid base64 value"), nil
	}

	return Bound(decoded), nil
}
