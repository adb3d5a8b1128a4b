package datastructure

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

type Index uint32

// Waypoint is one planning location. Immutable once created.
type Waypoint struct {
	x, y float64
}

func NewWaypoint(x, y float64) Waypoint {
	return Waypoint{x: x, y: y}
}

func (w Waypoint) GetX() float64 {
	return w.x
}

func (w Waypoint) GetY() float64 {
	return w.y
}

func (w Waypoint) IsFinite() bool {
	return !math.IsNaN(w.x) && !math.IsInf(w.x, 0) && !math.IsNaN(w.y) && !math.IsInf(w.y, 0)
}

func (w Waypoint) point() r2.Point {
	return r2.Point{X: w.x, Y: w.y}
}

// DistanceTo returns the straight-line (euclidean) distance between w and o.
func (w Waypoint) DistanceTo(o Waypoint) float64 {
	return w.point().Sub(o.point()).Norm()
}

// Less orders waypoints lexicographically on (x, y).
func (w Waypoint) Less(o Waypoint) bool {
	if w.x == o.x {
		return w.y < o.y
	}
	return w.x < o.x
}

func (w Waypoint) String() string {
	return fmt.Sprintf("(%g, %g)", w.x, w.y)
}

// SortWaypoints sorts waypoints in place, lexicographically on (x, y).
// After sorting, the position of a waypoint is its index.
func SortWaypoints(waypoints []Waypoint) {
	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].Less(waypoints[j])
	})
}

// IsSorted reports whether waypoints are already in index order.
func IsSorted(waypoints []Waypoint) bool {
	return sort.SliceIsSorted(waypoints, func(i, j int) bool {
		return waypoints[i].Less(waypoints[j])
	})
}

// BoundingBox returns the smallest rectangle containing every waypoint.
func BoundingBox(waypoints []Waypoint) r2.Rect {
	if len(waypoints) == 0 {
		return r2.EmptyRect()
	}
	points := make([]r2.Point, len(waypoints))
	for i, w := range waypoints {
		points[i] = w.point()
	}
	return r2.RectFromPoints(points...)
}
