package opviewtest

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"go.opview.org/opview/pkg/maybe"
	"go.opview.org/opview/pkg/opview"
)

// TestView runs the laws every copyable view must satisfy over the
// element type T. a and b must differ.
func TestView[T comparable](t *testing.T, a, b T) {
	t.Run("FromAliases", func(t *testing.T) {
		x := a
		v := opview.From(&x)
		require.True(t, v.Ok())
		require.Same(t, &x, v.Ptr())
		require.Equal(t, a, v.Get())
		x = b
		require.Equal(t, b, v.Get())
	})
	t.Run("Absent", func(t *testing.T) {
		require.False(t, opview.None[T]().Ok())
		require.False(t, opview.From[T](nil).Ok())
		var zero opview.View[T]
		require.False(t, zero.Ok())
		require.Nil(t, zero.Ptr())
		require.Panics(t, func() { zero.Get() })
		require.Panics(t, func() { zero.Set(a) })
	})
	t.Run("SetWritesThrough", func(t *testing.T) {
		x := a
		v := opview.From(&x)
		v.Set(b)
		require.Equal(t, b, x)
	})
	t.Run("CopyDuplicatesBinding", func(t *testing.T) {
		x := a
		v1 := opview.From(&x)
		v2 := v1
		require.Same(t, v1.Ptr(), v2.Ptr())
		v2.Set(b)
		require.Equal(t, b, x)
		require.Equal(t, b, v1.Get())
	})
	t.Run("MaybeInterop", func(t *testing.T) {
		m := maybe.Just(a)
		v := opview.FromMaybe(&m)
		require.True(t, v.Ok())
		require.Equal(t, a, v.Get())
		m.Set(b)
		require.Equal(t, b, v.Get())
		v.Set(a)
		require.Equal(t, a, m.X)
		require.Equal(t, maybe.Just(a), v.Maybe())

		n := maybe.Nothing[T]()
		require.False(t, opview.FromMaybe(&n).Ok())
		require.Equal(t, n, opview.FromMaybe(&n).Maybe())
	})
	t.Run("MaybeSnapshot", func(t *testing.T) {
		// the view binds to the payload address, not to the container's
		// engagement state
		m := maybe.Just(a)
		v := opview.FromMaybe(&m)
		m.Clear()
		require.False(t, m.Ok)
		require.True(t, v.Ok())
		require.Equal(t, a, v.Get())
	})
	t.Run("ReadOnly", func(t *testing.T) {
		// mutation through r is a compile error: ReadView has no Set and
		// no Ptr
		x := a
		v := opview.From(&x)
		r := v.ReadOnly()
		require.True(t, r.Ok())
		require.Equal(t, a, r.Get())
		v.Set(b)
		require.Equal(t, b, r.Get())

		require.False(t, opview.ReadNone[T]().Ok())
		require.Equal(t, b, opview.ReadFrom(&x).Get())
		m := maybe.Just(a)
		require.Equal(t, a, opview.ReadFromMaybe(&m).Get())
	})
}

// TestUniqueView runs the laws the move-only view must satisfy over the
// element type T. a and b must differ.
func TestUniqueView[T comparable](t *testing.T, a, b T) {
	t.Run("Materialize", func(t *testing.T) {
		x := a
		uv := opview.UniqueOf(x)
		require.True(t, uv.Ok())
		require.Equal(t, a, uv.Get())
		// the owned copy is independent of the argument's storage
		uv.Set(b)
		require.Equal(t, a, x)
		require.Equal(t, b, uv.Get())
	})
	t.Run("Move", func(t *testing.T) {
		uv := opview.UniqueOf(a)
		p := uv.Ptr()
		mv := uv.Move()
		require.False(t, uv.Ok())
		require.Nil(t, uv.Ptr())
		require.True(t, mv.Ok())
		require.Same(t, p, mv.Ptr())
		require.Equal(t, a, mv.Get())
	})
	t.Run("AliasCloseKeepsStorage", func(t *testing.T) {
		x := a
		uv := opview.UniqueFrom(&x)
		require.Same(t, &x, uv.Ptr())
		require.NoError(t, uv.Close())
		require.False(t, uv.Ok())
		require.Equal(t, a, x)
	})
	t.Run("Absent", func(t *testing.T) {
		require.False(t, opview.UniqueNone[T]().Ok())
		require.False(t, opview.UniqueFrom[T](nil).Ok())
		require.Panics(t, func() { opview.UniqueNone[T]().Get() })
		require.NoError(t, opview.UniqueNone[T]().Close())
	})
	t.Run("MaybeSnapshot", func(t *testing.T) {
		m := maybe.Just(a)
		uv := opview.UniqueFromMaybe(&m)
		require.Equal(t, a, uv.Get())
		m.Clear()
		require.True(t, uv.Ok())
		require.Equal(t, a, uv.Get())
		require.NoError(t, uv.Close())
		require.Equal(t, a, m.X)
	})
	t.Run("CopyPoisons", func(t *testing.T) {
		uv := opview.UniqueOf(a)
		cp := *uv
		require.Panics(t, func() { cp.Ok() })
		// the source is unaffected
		require.Equal(t, a, uv.Get())
	})
}

// TestUniqueRelease runs the release-accounting laws using the Resource
// element type.
func TestUniqueRelease(t *testing.T) {
	t.Run("OwnedCloseReleasesOnce", func(t *testing.T) {
		var n int32
		uv := opview.UniqueOf(Resource{ID: 1, Closes: &n})
		require.NoError(t, uv.Close())
		require.Equal(t, int32(1), atomic.LoadInt32(&n))
		require.NoError(t, uv.Close())
		require.Equal(t, int32(1), atomic.LoadInt32(&n))
	})
	t.Run("AliasCloseReleasesNothing", func(t *testing.T) {
		var n int32
		r := Resource{ID: 2, Closes: &n}
		uv := opview.UniqueFrom(&r)
		require.NoError(t, uv.Close())
		require.Equal(t, int32(0), atomic.LoadInt32(&n))
		require.Equal(t, 2, r.ID)
	})
	t.Run("MoveTransfersRelease", func(t *testing.T) {
		var n int32
		uv := opview.UniqueOf(Resource{ID: 3, Closes: &n})
		mv := uv.Move()
		require.NoError(t, uv.Close())
		require.Equal(t, int32(0), atomic.LoadInt32(&n))
		require.NoError(t, mv.Close())
		require.Equal(t, int32(1), atomic.LoadInt32(&n))
	})
	t.Run("CloseError", func(t *testing.T) {
		var n int32
		errRelease := errors.New("release failed")
		uv := opview.UniqueOf(Resource{Err: errRelease, Closes: &n})
		require.ErrorIs(t, uv.Close(), errRelease)
		require.Equal(t, int32(1), atomic.LoadInt32(&n))
		require.NoError(t, uv.Close())
	})
}
