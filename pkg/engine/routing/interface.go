package routing

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
)

// Router plans one leg between two waypoints.
type Router interface {
	ShortestPath(start, end da.Index, maxCost float64, opts ...Option) (*SearchResult, error)
}

// RoundTripRouter plans start -> end -> start.
type RoundTripRouter interface {
	Plan(start, end da.Index, maxCost, ratio float64) (*RoundTripResult, error)
}
