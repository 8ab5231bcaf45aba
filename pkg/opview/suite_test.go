package opview_test

import (
	"testing"

	"go.opview.org/opview/pkg/opviewtest"
)

type nodeID uint64

func TestViewLaws(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		xs := opviewtest.Vals[int](2)
		opviewtest.TestView(t, xs[0], xs[1])
	})
	t.Run("NodeID", func(t *testing.T) {
		xs := opviewtest.Vals[nodeID](2)
		opviewtest.TestView(t, xs[0], xs[1])
	})
	t.Run("String", func(t *testing.T) { opviewtest.TestView(t, "a", "b") })
	t.Run("Struct", func(t *testing.T) {
		type point struct{ X, Y int }
		opviewtest.TestView(t, point{1, 2}, point{3, 4})
	})
}

func TestUniqueViewLaws(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		xs := opviewtest.Vals[int](2)
		opviewtest.TestUniqueView(t, xs[0], xs[1])
	})
	t.Run("NodeID", func(t *testing.T) {
		xs := opviewtest.Vals[nodeID](2)
		opviewtest.TestUniqueView(t, xs[0], xs[1])
	})
	t.Run("String", func(t *testing.T) { opviewtest.TestUniqueView(t, "a", "b") })
}

func TestUniqueRelease(t *testing.T) {
	opviewtest.TestUniqueRelease(t)
}
