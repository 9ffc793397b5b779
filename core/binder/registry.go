package binder

import (
	"context"
	"sync"
	"sync/atomic"
)

// ValueBinder converts the raw value of a single parameter into a typed value.
// CanBind inspects the produced type on the descriptor, not the incoming data:
// a binder for type Product is selected by seeing a parameter declared as
// Product, whatever the raw input looks like.
//
// Bind returns a BoundValue for both success and structured failure
// (malformed input, entity not found). The error return is reserved for
// system-level faults that should become a 5xx.
type ValueBinder interface {
	Name() string
	CanBind(d Descriptor) bool
	Bind(ctx context.Context, raw RawValue, d Descriptor) (BoundValue, error)
}

// Registry is an ordered collection of value binders consulted
// first-match-wins. Registration order is a visible contract: custom binders
// meant to override built-ins must be registered before them.
//
// A registry is append-only during the configuration phase and must be frozen
// before serving. Once frozen it is read-only and safe for concurrent use
// without locking on the request path.
type Registry struct {
	mu      sync.Mutex
	binders []ValueBinder
	frozen  atomic.Bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends binders to the registry in the given order.
// Returns ErrRegistryFrozen after Freeze has been called.
func (reg *Registry) Register(binders ...ValueBinder) error {
	if reg.frozen.Load() {
		return ErrRegistryFrozen
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, b := range binders {
		if b == nil {
			return ErrNilBinder
		}
		reg.binders = append(reg.binders, b)
	}
	return nil
}

// Freeze marks the end of the configuration phase. Subsequent Register calls
// fail; Resolve and BindValue become lock-free.
func (reg *Registry) Freeze() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.frozen.Store(true)
}

// Resolve returns the binder for the descriptor, or false if none matches.
// When the descriptor prefers a named binder, only that binder is considered;
// otherwise the first registered binder whose CanBind returns true wins.
//
// A miss is not a request failure: callers fall back to the default
// primitive-conversion binder.
func (reg *Registry) Resolve(d Descriptor) (ValueBinder, bool) {
	binders := reg.snapshot()

	if d.Binder != "" {
		for _, b := range binders {
			if b.Name() == d.Binder && b.CanBind(d) {
				return b, true
			}
		}
		return nil, false
	}

	for _, b := range binders {
		if b.CanBind(d) {
			return b, true
		}
	}
	return nil, false
}

// BindValue resolves and invokes the binder for the descriptor in one step,
// falling back to primitive conversion when no registered binder matches.
func (reg *Registry) BindValue(ctx context.Context, raw RawValue, d Descriptor) (BoundValue, error) {
	b, ok := reg.Resolve(d)
	if !ok {
		b = Primitive()
	}
	return b.Bind(ctx, raw, d)
}

func (reg *Registry) snapshot() []ValueBinder {
	if reg.frozen.Load() {
		return reg.binders
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]ValueBinder, len(reg.binders))
	copy(out, reg.binders)
	return out
}
