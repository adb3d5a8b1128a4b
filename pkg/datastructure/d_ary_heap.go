package datastructure

import (
	"errors"
)

var ErrHeapEmpty = errors.New("heap is empty")

// MinHeap d-ary heap priorityqueue. less(a, b) == true means a is extracted before b.
type MinHeap[T any] struct {
	heap []T
	d    int
	less func(a, b T) bool
}

func NewBinaryHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return NewdAryHeap[T](2, less)
}

func NewFourAryHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return NewdAryHeap[T](4, less)
}

func NewdAryHeap[T any](d int, less func(a, b T) bool) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]T, 0),
		d:    d,
		less: less,
	}
}

// NewLabelQueue returns the queue used by the label-setting search, ordered by Label.IsPreferredOver.
func NewLabelQueue() *MinHeap[*Label] {
	return NewFourAryHeap(func(a, b *Label) bool {
		return a.IsPreferredOver(b)
	})
}

// parent index of the parent of index
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp moves heap[index] up while it is preferred over its parent. O(log N).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.less(h.heap[index], h.heap[h.parent(index)]) {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown moves heap[index] down, swapping with its most preferred child. O(d log N).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.less(h.heap[i], h.heap[smallest]) {
				smallest = i
			}
		}

		if !h.less(h.heap[smallest], h.heap[index]) {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
}

// GetMin returns the root without removing it.
func (h *MinHeap[T]) GetMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrHeapEmpty
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(item T) {
	h.heap = append(h.heap, item)
	h.heapifyUp(h.Size() - 1)
}

// ExtractMin removes and returns the root. O(d log N).
func (h *MinHeap[T]) ExtractMin() (T, error) {
	var zero T
	if h.IsEmpty() {
		return zero, ErrHeapEmpty
	}
	root := h.heap[0]

	last := h.Size() - 1
	h.Swap(0, last)
	h.heap[last] = zero // for gc
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}
