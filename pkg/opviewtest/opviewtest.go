// Package opviewtest provides helpers for testing code that passes and
// receives optional views.
package opviewtest

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Context returns a context with a development logger attached, suitable
// for driving scenario functions from tests.
func Context(t testing.TB) context.Context {
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx := context.Background()
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// Vals returns n distinct values of an integer element type, starting
// from 1 so none of them is the zero value.
func Vals[T constraints.Integer](n int) []T {
	xs := make([]T, n)
	for i := range xs {
		xs[i] = T(i + 1)
	}
	return xs
}

// Resource is an element type whose release is observable: Close adds one
// to the counter behind Closes and returns Err. Tests use it to assert
// that a view releases owned storage exactly once, and never releases
// storage it only aliases.
type Resource struct {
	ID     int
	Err    error
	Closes *int32
}

func (r Resource) Close() error {
	atomic.AddInt32(r.Closes, 1)
	return r.Err
}
