package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_PushBelowCapacity(t *testing.T) {
	r := NewRing[int](5)
	r.Push(1)
	r.Push(2)
	r.Push(3)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{1, 2, 3}, r.Items())
}

func TestRing_EvictsOldestFirst(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{3, 4, 5}, r.Items())
}

func TestRing_CapacityOne(t *testing.T) {
	r := NewRing[string](1)
	r.Push("a")
	r.Push("b")

	assert.Equal(t, []string{"b"}, r.Items())
}

func TestNewRing_PanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { NewRing[int](0) })
}
