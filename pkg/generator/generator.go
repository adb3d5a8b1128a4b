package generator

import (
	"errors"
	"fmt"
	"time"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

var ErrTooFewWaypoints = errors.New("generator: need at least 2 waypoints")

// Generator produces random waypoint sets: (0,0) first, (n,n) last and n-2 waypoints with
// integer coordinates in [1, n-1] in between.
type Generator struct {
	rd *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rd: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededGenerator seeds from the wall clock.
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(uint64(time.Now().UnixNano()))
}

// Generate returns count waypoints in generation order, not sorted.
func (g *Generator) Generate(count int) ([]da.Waypoint, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, count)
	}

	waypoints := make([]da.Waypoint, 0, count)
	waypoints = append(waypoints, da.NewWaypoint(0, 0))
	for i := 0; i < count-2; i++ {
		waypoints = append(waypoints, g.randomWaypoint(count))
	}
	waypoints = append(waypoints, da.NewWaypoint(float64(count), float64(count)))
	return waypoints, nil
}

func (g *Generator) randomWaypoint(count int) da.Waypoint {
	x := g.rd.Intn(count-1) + 1
	y := g.rd.Intn(count-1) + 1
	return da.NewWaypoint(float64(x), float64(y))
}
