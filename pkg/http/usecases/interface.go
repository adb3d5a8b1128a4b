package usecases

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine"
	"github.com/lintang-b-s/Waypointx/pkg/engine/routing"
	"github.com/lintang-b-s/Waypointx/pkg/spatialindex"
)

type PlanningEngine interface {
	ShortestPath(q engine.OneWayQuery) (*routing.SearchResult, error)
	RoundTrip(q engine.RoundTripQuery) (*routing.RoundTripResult, error)
	GetWaypoints() []da.Waypoint
}

type SpatialIndex interface {
	Nearest(x, y, maxRadius float64) (spatialindex.WaypointEntry, error)
}
