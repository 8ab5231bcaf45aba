package maybe

type Maybe[T any] struct {
	Ok bool
	X  T
}

func Just[T any](x T) Maybe[T] {
	return Maybe[T]{Ok: true, X: x}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Ptr returns the address of the payload, or nil if m is disengaged.
// The address stays valid for as long as m's storage does; it does not
// track later calls to Set or Clear.
func (m *Maybe[T]) Ptr() *T {
	if !m.Ok {
		return nil
	}
	return &m.X
}

// Set engages m in place, overwriting the payload.
func (m *Maybe[T]) Set(x T) {
	m.X = x
	m.Ok = true
}

// Clear disengages m. The payload is left as-is, so addresses previously
// obtained through Ptr keep reading the last value.
func (m *Maybe[T]) Clear() {
	m.Ok = false
}

func (m Maybe[T]) Get() (T, bool) {
	return m.X, m.Ok
}

func (m Maybe[T]) GetOr(def T) T {
	if m.Ok {
		return m.X
	}
	return def
}
