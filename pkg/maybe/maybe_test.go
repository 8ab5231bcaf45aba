package maybe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJustNothing(t *testing.T) {
	j := Just(10)
	require.True(t, j.Ok)
	require.Equal(t, 10, j.X)

	n := Nothing[int]()
	require.False(t, n.Ok)
}

func TestPtr(t *testing.T) {
	m := Just(10)
	p := m.Ptr()
	require.NotNil(t, p)
	require.Same(t, &m.X, p)

	*p = 40
	require.Equal(t, 40, m.X)
	m.Set(50)
	require.Equal(t, 50, *p)
}

func TestPtrNothing(t *testing.T) {
	var m Maybe[string]
	require.Nil(t, m.Ptr())
}

func TestClearKeepsPayload(t *testing.T) {
	m := Just(90)
	p := m.Ptr()
	m.Clear()
	require.False(t, m.Ok)
	require.Nil(t, m.Ptr())
	// the storage itself survives disengagement
	require.Equal(t, 90, *p)

	m.Set(91)
	require.Equal(t, 91, *p)
}

func TestGet(t *testing.T) {
	x, ok := Just("a").Get()
	require.True(t, ok)
	require.Equal(t, "a", x)

	_, ok = Nothing[string]().Get()
	require.False(t, ok)

	require.Equal(t, "a", Just("a").GetOr("b"))
	require.Equal(t, "b", Nothing[string]().GetOr("b"))
}
