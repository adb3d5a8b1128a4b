package spatialindex

import (
	"errors"
	"math"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

var ErrNoWaypointNearby = errors.New("spatialindex: no waypoint within search radius")

// Rtree indexes waypoints by position, each leaf is the waypoint's own point.
type Rtree struct {
	tr      *rtree.RTreeG[WaypointEntry]
	extent  float64 // longest side of the indexed bounding box
	initial float64
}

type WaypointEntry struct {
	id       da.Index
	waypoint da.Waypoint
}

func (we WaypointEntry) GetID() da.Index {
	return we.id
}

func (we WaypointEntry) GetWaypoint() da.Waypoint {
	return we.waypoint
}

func newWaypointEntry(id da.Index, w da.Waypoint) WaypointEntry {
	return WaypointEntry{id: id, waypoint: w}
}

// NewRtree. initialRadius is the first box half-width tried by Nearest, it doubles until a
// waypoint is found.
func NewRtree(initialRadius float64) *Rtree {
	var tr rtree.RTreeG[WaypointEntry]
	return &Rtree{
		tr:      &tr,
		initial: initialRadius,
	}
}

// Build. index waypoints, the position in the slice is the waypoint id
func (rt *Rtree) Build(waypoints []da.Waypoint, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("waypoints", len(waypoints)))
	for i, w := range waypoints {
		p := [2]float64{w.GetX(), w.GetY()}
		rt.tr.Insert(p, p, newWaypointEntry(da.Index(i), w))
	}

	bb := da.BoundingBox(waypoints)
	if !bb.IsEmpty() {
		size := bb.Size()
		rt.extent = math.Max(size.X, size.Y)
	}
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius returns waypoints inside the square of half-width radius around (x, y).
func (rt *Rtree) SearchWithinRadius(x, y, radius float64) []WaypointEntry {
	results := make([]WaypointEntry, 0, 10)
	rt.tr.Search([2]float64{x - radius, y - radius}, [2]float64{x + radius, y + radius},
		func(min, max [2]float64, data WaypointEntry) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Nearest returns the waypoint closest to (x, y) by euclidean distance, ties go to the lower id.
// Returns ErrNoWaypointNearby if nothing is within maxRadius; maxRadius <= 0 means unbounded.
func (rt *Rtree) Nearest(x, y, maxRadius float64) (WaypointEntry, error) {
	q := da.NewWaypoint(x, y)
	if rt.tr.Len() == 0 || !q.IsFinite() {
		return WaypointEntry{}, ErrNoWaypointNearby
	}

	radius := rt.initial
	if radius <= 0 {
		radius = 1
	}
	for {
		if maxRadius > 0 && radius > maxRadius {
			radius = maxRadius
		}

		candidates := rt.SearchWithinRadius(x, y, radius)
		if len(candidates) > 0 {
			best, bestDist := closest(q, candidates)
			// a waypoint outside the box may still be closer than a corner hit
			if bestDist > radius {
				best, bestDist = closest(q, rt.SearchWithinRadius(x, y, bestDist))
			}
			if maxRadius > 0 && bestDist > maxRadius {
				return WaypointEntry{}, ErrNoWaypointNearby
			}
			return best, nil
		}

		if maxRadius > 0 && radius >= maxRadius {
			return WaypointEntry{}, ErrNoWaypointNearby
		}
		if rt.extent > 0 && radius > 2*rt.extent+math.Abs(x)+math.Abs(y) {
			return WaypointEntry{}, ErrNoWaypointNearby
		}
		radius *= 2
	}
}

func closest(q da.Waypoint, candidates []WaypointEntry) (WaypointEntry, float64) {
	best := candidates[0]
	bestDist := q.DistanceTo(best.waypoint)
	for _, c := range candidates[1:] {
		d := q.DistanceTo(c.waypoint)
		if d < bestDist || (d == bestDist && c.id < best.id) {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
