package binder

import (
	"context"
	"errors"
	"reflect"
	"strconv"
)

// entityBinder binds a request value interpreted as a lookup key to the
// entity fetched from an external data source.
type entityBinder[K, E any] struct {
	name     string
	parseKey func(string) (K, error)
	lookup   func(ctx context.Context, key K) (E, error)
}

// Entity creates a keyed-entity binder for type E with int64 keys, the common
// case of numeric route ids. See EntityKey for custom key types.
//
// The lookup collaborator reports absence by returning (or wrapping)
// ErrEntityNotFound; the binder converts that into a per-field "not found"
// failure. It deliberately does not decide HTTP semantics: whether "not
// found" becomes a 404, a 400 or something else is the result-resolution
// layer's call, which keeps the same binder reusable across callers.
//
// Any other lookup error is a collaborator fault and propagates unchanged.
func Entity[E any](lookup func(ctx context.Context, id int64) (E, error)) ValueBinder {
	return EntityKey(func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, lookup)
}

// EntityKey creates a keyed-entity binder with a custom key parser. parseKey
// failures are reported as field failures (malformed key), never as faults.
func EntityKey[K, E any](parseKey func(string) (K, error), lookup func(ctx context.Context, key K) (E, error)) ValueBinder {
	return entityBinder[K, E]{
		name:     "entity:" + reflect.TypeFor[E]().String(),
		parseKey: parseKey,
		lookup:   lookup,
	}
}

func (b entityBinder[K, E]) Name() string { return b.name }

// CanBind matches on the produced entity type: a parameter declared as E
// selects this binder regardless of what the raw input looks like.
func (b entityBinder[K, E]) CanBind(d Descriptor) bool {
	return d.Type == reflect.TypeFor[E]()
}

func (b entityBinder[K, E]) Bind(ctx context.Context, raw RawValue, d Descriptor) (BoundValue, error) {
	if !raw.Present {
		return Failed(d.Name, "missing value"), nil
	}

	key, err := b.parseKey(raw.Value)
	if err != nil {
		return Failed(d.Name, "invalid key"), nil
	}

	entity, err := b.lookup(ctx, key)
	if err != nil {
		if errors.Is(err, ErrEntityNotFound) {
			return Failed(d.Name, "not found"), nil
		}
		// Data source fault, not a binding failure
		return BoundValue{}, err
	}

	return Bound(entity), nil
}
