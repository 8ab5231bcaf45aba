package opview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.opview.org/opview/pkg/maybe"
)

func TestFrom(t *testing.T) {
	x := 10
	v := From(&x)
	require.True(t, v.Ok())
	require.Same(t, &x, v.Ptr())
	require.Equal(t, 10, v.Get())
}

func TestFromNil(t *testing.T) {
	var p *int
	v := From(p)
	require.False(t, v.Ok())
	require.Nil(t, v.Ptr())
}

func TestNone(t *testing.T) {
	require.False(t, None[int]().Ok())
	var zero View[string]
	require.False(t, zero.Ok())
}

func TestAbsentAccessPanics(t *testing.T) {
	require.PanicsWithValue(t, "opview: Get on absent View", func() {
		None[int]().Get()
	})
	require.PanicsWithValue(t, "opview: Set on absent View", func() {
		None[int]().Set(1)
	})
	require.PanicsWithValue(t, "opview: Get on absent ReadView", func() {
		ReadNone[int]().Get()
	})
}

// Bind a stack value, watch writes in both directions, widen over a
// container payload, and observe the stale binding left behind after the
// container disengages.
func TestAliasingSequence(t *testing.T) {
	x := 10
	ox := From(&x)
	require.Equal(t, 10, ox.Get())
	x = 40
	require.Equal(t, 40, ox.Get())
	ox.Set(50)
	require.Equal(t, 50, x)

	opY := maybe.Just(20)
	oz := ReadFromMaybe(&opY)
	require.Equal(t, 20, oz.Get())
	opY.Set(25)
	require.Equal(t, 25, oz.Get())

	opY.Set(90)
	opY.Clear()
	require.False(t, opY.Ok)
	// stale binding: the container disengaged, the payload storage did not
	require.True(t, oz.Ok())
	require.Equal(t, 90, oz.Get())
}

func TestCopySharesStorage(t *testing.T) {
	x := "a"
	v1 := From(&x)
	v2 := v1
	v2.Set("b")
	require.Equal(t, "b", x)
	require.Equal(t, "b", v1.Get())
	require.Same(t, v1.Ptr(), v2.Ptr())
}

func TestReadOnlyKeepsBinding(t *testing.T) {
	x := 10
	r := From(&x).ReadOnly()
	require.True(t, r.Ok())
	require.Equal(t, 10, r.Get())
	x = 40
	require.Equal(t, 40, r.Get())

	require.False(t, None[int]().ReadOnly().Ok())
}

func TestFromMaybeNothing(t *testing.T) {
	m := maybe.Nothing[int]()
	require.False(t, FromMaybe(&m).Ok())
	require.False(t, ReadFromMaybe(&m).Ok())
}

func TestMaybeRoundTrip(t *testing.T) {
	m := maybe.Just(20)
	v := FromMaybe(&m)
	require.Equal(t, maybe.Just(20), v.Maybe())
	m.Set(25)
	// the returned container is a copy of the current state, not a binding
	got := v.Maybe()
	require.Equal(t, maybe.Just(25), got)
	m.Set(30)
	require.Equal(t, 25, got.X)

	require.Equal(t, maybe.Nothing[int](), None[int]().Maybe())
	require.Equal(t, maybe.Nothing[int](), ReadNone[int]().Maybe())
	x := 7
	require.Equal(t, maybe.Just(7), ReadFrom(&x).Maybe())
}

func BenchmarkFrom(b *testing.B) {
	x := 10
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := From(&x)
		if !v.Ok() {
			b.Fatal("absent view")
		}
	}
}
