//go:build opviewext

package opview_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"go.opview.org/opview/pkg/opview"
	"go.opview.org/opview/pkg/opviewtest"
)

func TestViewReset(t *testing.T) {
	x := 10
	v := opview.From(&x)
	v.Reset()
	require.False(t, v.Ok())
	require.Nil(t, v.Ptr())
	require.Equal(t, 10, x)
}

func TestReadViewReset(t *testing.T) {
	x := 10
	r := opview.ReadFrom(&x)
	r.Reset()
	require.False(t, r.Ok())
	require.Equal(t, 10, x)
}

func TestUniqueResetAlias(t *testing.T) {
	var n int32
	r := opviewtest.Resource{ID: 1, Closes: &n}
	uv := opview.UniqueFrom(&r)
	uv.Reset()
	require.False(t, uv.Ok())
	require.Equal(t, int32(0), atomic.LoadInt32(&n))
	require.Equal(t, 1, r.ID)
}

func TestUniqueResetOwned(t *testing.T) {
	var n int32
	uv := opview.UniqueOf(opviewtest.Resource{ID: 2, Closes: &n})
	uv.Reset()
	require.False(t, uv.Ok())
	require.Equal(t, int32(1), atomic.LoadInt32(&n))
	uv.Reset()
	require.Equal(t, int32(1), atomic.LoadInt32(&n))
}
