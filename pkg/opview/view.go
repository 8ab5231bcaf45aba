// Package opview provides views: optional, non-owning bindings to values
// whose storage is owned somewhere else.
//
// Views are not the idiomatic way to pass maybe-a-value in Go; a *T
// already does that. Views exist for call sites which should accept a
// plain value's address, a maybe.Maybe payload, or nothing, uniformly and
// without repacking data that is already in memory. A View never copies
// and never releases what it points at; a UniqueView additionally can own
// a freshly materialized value so that a binding to a short-lived result
// stays alive.
package opview

import (
	"go.opview.org/opview/pkg/maybe"
)

// View is a copyable view over mutable storage of type T.
// The zero value is an absent view.
// Copying a View duplicates the binding, never the data.
type View[T any] struct {
	ptr *T
}

// None returns an absent View.
func None[T any]() View[T] {
	return View[T]{}
}

// From returns a View aliasing p's storage, which must outlive the view.
// A nil p yields an absent view.
func From[T any](p *T) View[T] {
	return View[T]{ptr: p}
}

// FromMaybe snapshots m: if m is engaged the view aliases its payload,
// otherwise the view is absent. The binding is to the payload address
// only; clearing or re-engaging m afterward is not observed, and a view
// taken before a Clear keeps reading the stale payload.
func FromMaybe[T any](m *maybe.Maybe[T]) View[T] {
	return View[T]{ptr: m.Ptr()}
}

// Ok reports whether the view is bound to storage.
func (v View[T]) Ok() bool {
	return v.ptr != nil
}

// Get returns a copy of the referent.
// It panics if the view is absent.
func (v View[T]) Get() T {
	if v.ptr == nil {
		panic("opview: Get on absent View")
	}
	return *v.ptr
}

// Ptr returns the aliased address, or nil if the view is absent.
func (v View[T]) Ptr() *T {
	return v.ptr
}

// Set writes x to the referent in place; every other handle aliasing the
// same storage observes the write. It panics if the view is absent.
func (v View[T]) Set(x T) {
	if v.ptr == nil {
		panic("opview: Set on absent View")
	}
	*v.ptr = x
}

// ReadOnly converts v into a read-only view of the same storage.
// There is no conversion in the other direction.
func (v View[T]) ReadOnly() ReadView[T] {
	return ReadView[T]{ptr: v.ptr}
}

// Maybe returns the view's current state as a container value: a copy of
// the referent if present, Nothing otherwise.
func (v View[T]) Maybe() maybe.Maybe[T] {
	if v.ptr == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.ptr)
}

// ReadView is a copyable view over storage of type T which cannot be used
// to mutate it: it has no Set, and it does not expose the address.
// The zero value is an absent view.
type ReadView[T any] struct {
	ptr *T
}

// ReadNone returns an absent ReadView.
func ReadNone[T any]() ReadView[T] {
	return ReadView[T]{}
}

// ReadFrom returns a ReadView aliasing p's storage, which must outlive
// the view. A nil p yields an absent view.
func ReadFrom[T any](p *T) ReadView[T] {
	return ReadView[T]{ptr: p}
}

// ReadFromMaybe snapshots m the way FromMaybe does.
func ReadFromMaybe[T any](m *maybe.Maybe[T]) ReadView[T] {
	return ReadView[T]{ptr: m.Ptr()}
}

// Ok reports whether the view is bound to storage.
func (v ReadView[T]) Ok() bool {
	return v.ptr != nil
}

// Get returns a copy of the referent.
// It panics if the view is absent.
func (v ReadView[T]) Get() T {
	if v.ptr == nil {
		panic("opview: Get on absent ReadView")
	}
	return *v.ptr
}

// Maybe returns the view's current state as a container value: a copy of
// the referent if present, Nothing otherwise.
func (v ReadView[T]) Maybe() maybe.Maybe[T] {
	if v.ptr == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.ptr)
}
