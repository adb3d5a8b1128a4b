package datastructure

import "sort"

// IndexSet is a set of waypoint indices, used for waypoints a search must not visit.
// The zero value is an empty set; a nil IndexSet can be read but not written.
type IndexSet map[Index]struct{}

func NewIndexSet(indices ...Index) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

func (s IndexSet) Add(i Index) {
	s[i] = struct{}{}
}

func (s IndexSet) Contains(i Index) bool {
	_, ok := s[i]
	return ok
}

func (s IndexSet) Len() int {
	return len(s)
}

// Clone returns an independent copy, so sequential searches never alias one set.
func (s IndexSet) Clone() IndexSet {
	c := make(IndexSet, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Sorted returns the members in increasing order.
func (s IndexSet) Sorted() []Index {
	out := make([]Index, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}
