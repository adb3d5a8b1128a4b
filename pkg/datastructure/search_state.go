package datastructure

import "fmt"

// SearchState is the node of the expanded search graph: a waypoint together with how many
// waypoints (including this one) a path visited to reach it. Two paths ending in the same
// SearchState are interchangeable, only the cheaper one is kept.
type SearchState struct {
	waypoint Index
	visited  uint32
}

func NewSearchState(waypoint Index, visited uint32) SearchState {
	return SearchState{waypoint: waypoint, visited: visited}
}

func (s SearchState) GetWaypoint() Index {
	return s.waypoint
}

func (s SearchState) GetVisited() uint32 {
	return s.visited
}

func (s SearchState) String() string {
	return fmt.Sprintf("(waypoint=%d, visited=%d)", s.waypoint, s.visited)
}

// Label is the mutable record attached to a SearchState while it is a queue candidate.
// Labels are superseded by soft deletion, never removed from the queue.
type Label struct {
	state     SearchState
	remaining uint32 // |target - waypoint|
	cost      float64
	deleted   bool
}

func NewLabel(state SearchState, remaining uint32, cost float64) *Label {
	return &Label{
		state:     state,
		remaining: remaining,
		cost:      cost,
	}
}

func (l *Label) GetState() SearchState {
	return l.state
}

func (l *Label) GetWaypoint() Index {
	return l.state.waypoint
}

func (l *Label) GetVisited() uint32 {
	return l.state.visited
}

func (l *Label) GetRemaining() uint32 {
	return l.remaining
}

func (l *Label) GetCost() float64 {
	return l.cost
}

func (l *Label) IsDeleted() bool {
	return l.deleted
}

func (l *Label) MarkDeleted() {
	l.deleted = true
}

// IsPreferredOver is the queue ordering, the label returning true is popped first:
//  1. greater remaining distance (waypoints nearer the start are drained first),
//  2. then more waypoints visited,
//  3. then lower cost.
//
// Clause 1 only yields correct results because edges follow the monotone index order. A search over
// arbitrary edges must order by cost alone.
func (l *Label) IsPreferredOver(o *Label) bool {
	if l.remaining != o.remaining {
		return l.remaining > o.remaining
	}
	if l.state.visited != o.state.visited {
		return l.state.visited > o.state.visited
	}
	return l.cost < o.cost
}

// RemainingDistance returns the index distance |to - from|.
func RemainingDistance(from, to Index) uint32 {
	if from > to {
		return uint32(from - to)
	}
	return uint32(to - from)
}
