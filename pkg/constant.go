package pkg

import "math"

// enum of leg direction, relative to waypoint index order
type Direction uint8

const (
	FORWARD Direction = iota
	BACKWARD
	BOTH
)

func (d Direction) String() string {
	switch d {
	case FORWARD:
		return "forward"
	case BACKWARD:
		return "backward"
	case BOTH:
		return "both"
	default:
		return "unknown"
	}
}

// Permits reports whether an edge from waypoint index `from` to waypoint index `to` may be traversed.
func (d Direction) Permits(from, to int) bool {
	switch d {
	case FORWARD:
		return from < to
	case BACKWARD:
		return from > to
	case BOTH:
		return from != to
	default:
		return false
	}
}

// DirectionOf returns the direction a leg from start to end has to take.
// start == end is reported as BOTH, the leg then has no edges.
func DirectionOf(start, end int) Direction {
	if start < end {
		return FORWARD
	} else if start > end {
		return BACKWARD
	}
	return BOTH
}

var INF_COST = math.Inf(1)

const (
	// NO_MAX_LENGTH signals that routes of any length are permitted.
	NO_MAX_LENGTH = 0

	MIN_MAX_LENGTH = 2

	// brute force enumerates 2^k subsets
	MAX_NAIVE_INTERIOR_WAYPOINTS = 20

	COST_EPSILON = 1e-9
)

var DEFAULT_BUDGETS = []float64{29.0, 45.0, 77.0, 150.0}

const (
	DEFAULT_RATIO = 0.5
)
