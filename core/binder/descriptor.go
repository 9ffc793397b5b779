package binder

import (
	"net/http"
	"reflect"

	"github.com/dmitrymomot/bindkit/core/handler"
)

// Source identifies the request location a parameter is read from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceBody   Source = "body"
)

// Descriptor describes one action parameter: its name, the declared Go type
// the binder must produce, and where in the request its raw value lives.
// Descriptors are immutable values built once at route registration time.
type Descriptor struct {
	// Name is the parameter name at its source (path segment, query key, header).
	Name string

	// Type is the declared type of the bound value. Binder selection is keyed
	// on this produced type, not on the shape of the incoming data.
	Type reflect.Type

	// Source is the request location the raw value is extracted from.
	Source Source

	// Binder optionally names a specific registered binder to use, overriding
	// the registration-order scan. Populated explicitly at configuration time.
	Binder string
}

// Param builds a Descriptor for a value of type T.
func Param[T any](name string, source Source) Descriptor {
	return Descriptor{
		Name:   name,
		Type:   reflect.TypeFor[T](),
		Source: source,
	}
}

// WithBinder returns a copy of the descriptor preferring the named binder.
func (d Descriptor) WithBinder(name string) Descriptor {
	d.Binder = name
	return d
}

// RawValue is the untyped value extracted from the request for one parameter.
// It is created per request and discarded after binding.
type RawValue struct {
	Name    string
	Source  Source
	Value   string
	Present bool
}

// Raw extracts the raw value described by d from the request. The extractor is
// required for path parameters; pass nil otherwise. Body parameters are not
// served here: structured bodies go through the JSON binder instead.
func Raw(r *http.Request, d Descriptor, param handler.ParamExtractor) (RawValue, error) {
	raw := RawValue{Name: d.Name, Source: d.Source}

	switch d.Source {
	case SourcePath:
		if param == nil {
			return raw, ErrFailedToParsePath
		}
		raw.Value = param(r, d.Name)
		raw.Present = raw.Value != ""

	case SourceQuery:
		values, ok := r.URL.Query()[d.Name]
		if ok && len(values) > 0 {
			raw.Value = values[0]
			raw.Present = true
		}

	case SourceHeader:
		raw.Value = r.Header.Get(d.Name)
		raw.Present = raw.Value != ""

	default:
		return raw, ErrUnsupportedSource
	}

	return raw, nil
}
