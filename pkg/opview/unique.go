package opview

import (
	"io"

	"go.opview.org/opview/pkg/maybe"
)

// UniqueView is a move-only view over storage of type T.
//
// Like View it normally aliases storage owned by the caller, but it can
// also bind to a freshly materialized value (UniqueOf) and then it owns
// that storage until Move or Close. Close releases owned storage exactly
// once and never touches storage the view merely aliases.
//
// A UniqueView must not be duplicated by copying the struct; methods on a
// copy panic. Move is the supported way to transfer the binding, and it
// leaves the source absent.
type UniqueView[T any] struct {
	addr  *UniqueView[T] // receiver address, to detect copies by value
	ptr   *T
	owned bool
}

// UniqueNone returns an absent UniqueView.
func UniqueNone[T any]() *UniqueView[T] {
	v := &UniqueView[T]{}
	v.addr = v
	return v
}

// UniqueFrom returns a UniqueView aliasing p's storage. The view does not
// own the storage and will never release it. A nil p yields an absent
// view.
func UniqueFrom[T any](p *T) *UniqueView[T] {
	v := &UniqueView[T]{ptr: p}
	v.addr = v
	return v
}

// UniqueOf materializes a copy of x and returns a UniqueView owning it.
// This is the lifetime-extension path: it keeps a binding to a
// short-lived expression result alive for as long as the view.
func UniqueOf[T any](x T) *UniqueView[T] {
	p := new(T)
	*p = x
	v := &UniqueView[T]{ptr: p, owned: true}
	v.addr = v
	return v
}

// UniqueFromMaybe snapshots m the way FromMaybe does. The view does not
// own the payload.
func UniqueFromMaybe[T any](m *maybe.Maybe[T]) *UniqueView[T] {
	return UniqueFrom(m.Ptr())
}

func (v *UniqueView[T]) copyCheck() {
	if v.addr == nil {
		// a zero UniqueView binds to the first address it is used at
		v.addr = v
	} else if v.addr != v {
		panic("opview: illegal use of UniqueView copied by value")
	}
}

// Ok reports whether the view is bound to storage.
func (v *UniqueView[T]) Ok() bool {
	v.copyCheck()
	return v.ptr != nil
}

// Get returns a copy of the referent.
// It panics if the view is absent.
func (v *UniqueView[T]) Get() T {
	v.copyCheck()
	if v.ptr == nil {
		panic("opview: Get on absent UniqueView")
	}
	return *v.ptr
}

// Ptr returns the bound address, or nil if the view is absent.
func (v *UniqueView[T]) Ptr() *T {
	v.copyCheck()
	return v.ptr
}

// Set writes x to the referent in place.
// It panics if the view is absent.
func (v *UniqueView[T]) Set(x T) {
	v.copyCheck()
	if v.ptr == nil {
		panic("opview: Set on absent UniqueView")
	}
	*v.ptr = x
}

// Maybe returns the view's current state as a container value: a copy of
// the referent if present, Nothing otherwise.
func (v *UniqueView[T]) Maybe() maybe.Maybe[T] {
	v.copyCheck()
	if v.ptr == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.ptr)
}

// Move transfers the binding and its ownership to a new view and leaves v
// absent. Moving an absent view yields an absent view.
func (v *UniqueView[T]) Move() *UniqueView[T] {
	v.copyCheck()
	dst := &UniqueView[T]{ptr: v.ptr, owned: v.owned}
	dst.addr = dst
	v.ptr = nil
	v.owned = false
	return dst
}

// Close clears the binding. If the view owns its storage (the UniqueOf
// path), the owned value is released exactly once: the reference is
// dropped and, when *T implements io.Closer, its Close error is
// propagated. Storage the view merely aliases is never released.
// Close is idempotent, and closing an absent view returns nil.
func (v *UniqueView[T]) Close() error {
	v.copyCheck()
	ptr, owned := v.ptr, v.owned
	v.ptr = nil
	v.owned = false
	if !owned || ptr == nil {
		return nil
	}
	if c, ok := any(ptr).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
