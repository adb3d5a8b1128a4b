package datastructure

import (
	"github.com/lintang-b-s/Waypointx/pkg"
)

// DistanceMatrix is the precomputed all-pairs straight-line distance table of a sorted waypoint
// sequence. It is sized once at construction and read-only afterwards, so it can be shared by
// concurrent searches.
type DistanceMatrix struct {
	n         int
	direction pkg.Direction
	dist      []float64 // row-major n*n
}

// NewDistanceMatrix builds the matrix for waypoints (already sorted). Pairs that direction does
// not permit are reported as pkg.INF_COST by Cost.
func NewDistanceMatrix(waypoints []Waypoint, direction pkg.Direction) *DistanceMatrix {
	n := len(waypoints)
	dm := &DistanceMatrix{
		n:         n,
		direction: direction,
		dist:      make([]float64, n*n),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := waypoints[i].DistanceTo(waypoints[j])
			dm.dist[i*n+j] = d
			dm.dist[j*n+i] = d
		}
	}
	return dm
}

func (dm *DistanceMatrix) Size() int {
	return dm.n
}

func (dm *DistanceMatrix) GetDirection() pkg.Direction {
	return dm.direction
}

func (dm *DistanceMatrix) Contains(i Index) bool {
	return int(i) < dm.n
}

// Distance returns the euclidean distance between waypoint i and j regardless of direction.
func (dm *DistanceMatrix) Distance(i, j Index) float64 {
	return dm.dist[int(i)*dm.n+int(j)]
}

// IsTraversable reports whether the edge i -> j is permitted by the matrix direction.
func (dm *DistanceMatrix) IsTraversable(i, j Index) bool {
	return dm.direction.Permits(int(i), int(j))
}

// Cost returns the cost of travelling from i to j: 0 for i == j, the distance if the
// direction permits it, pkg.INF_COST otherwise.
func (dm *DistanceMatrix) Cost(i, j Index) float64 {
	if i == j {
		return 0
	}
	if !dm.IsTraversable(i, j) {
		return pkg.INF_COST
	}
	return dm.Distance(i, j)
}

// RouteCost sums edge costs along route. pkg.INF_COST if any edge is not traversable.
func (dm *DistanceMatrix) RouteCost(route []Index) float64 {
	total := 0.0
	for k := 1; k < len(route); k++ {
		total += dm.Cost(route[k-1], route[k])
	}
	return total
}
