package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOrdersByComparator(t *testing.T) {
	for _, d := range []int{2, 3, 4, 8} {
		h := NewdAryHeap[int](d, func(a, b int) bool { return a < b })
		input := []int{9, 4, 7, 1, 8, 2, 6, 3, 5, 0, 4}
		for _, v := range input {
			h.Insert(v)
		}
		require.Equal(t, len(input), h.Size())

		min, err := h.GetMin()
		require.NoError(t, err)
		assert.Equal(t, 0, min)

		got := make([]int, 0, len(input))
		for !h.IsEmpty() {
			v, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4, 4, 5, 6, 7, 8, 9}, got)
	}
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[string](func(a, b string) bool { return a < b })
	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = h.GetMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)

	h.Insert("b")
	h.Clear()
	assert.True(t, h.IsEmpty())
}

func TestLabelQueuePopsNearStartFirst(t *testing.T) {
	q := NewLabelQueue()
	q.Insert(NewLabel(NewSearchState(3, 2), 0, 1))
	q.Insert(NewLabel(NewSearchState(1, 2), 2, 9))
	q.Insert(NewLabel(NewSearchState(2, 3), 1, 5))
	q.Insert(NewLabel(NewSearchState(2, 2), 1, 2))
	q.Insert(NewLabel(NewSearchState(3, 4), 0, 7))

	expected := []SearchState{
		NewSearchState(1, 2),
		NewSearchState(2, 3),
		NewSearchState(2, 2),
		NewSearchState(3, 4),
		NewSearchState(3, 2),
	}
	for _, want := range expected {
		l, err := q.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, want, l.GetState())
	}
}
