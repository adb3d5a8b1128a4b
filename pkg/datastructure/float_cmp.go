package datastructure

import (
	"math"

	"github.com/lintang-b-s/Waypointx/pkg"
)

// equal operator
func Eq(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= pkg.COST_EPSILON
}
