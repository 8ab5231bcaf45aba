//go:build opviewext

package opview

// Reset clears the binding. The aliased storage is untouched.
func (v *View[T]) Reset() {
	v.ptr = nil
}

// Reset clears the binding. The aliased storage is untouched.
func (v *ReadView[T]) Reset() {
	v.ptr = nil
}

// Reset clears the binding, releasing the owned storage if the view owns
// it. It is Close with the error discarded.
func (v *UniqueView[T]) Reset() {
	_ = v.Close()
}
