// Package naive enumerates every route between two waypoints. It is exponential in the number of
// waypoints between start and end and only serves as a baseline for the label-setting search.
package naive

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
)

const (
	// each interior waypoint is either skipped or visited
	MAX_ONE_WAY_INTERIOR = pkg.MAX_NAIVE_INTERIOR_WAYPOINTS
	// each interior waypoint is skipped, visited on the way out or visited on the way back
	MAX_ROUND_TRIP_INTERIOR = 12
)

var (
	ErrTooManyWaypoints   = errors.New("naive: too many waypoints between start and end")
	ErrWaypointOutOfRange = errors.New("naive: waypoint index out of range")
)

// Guess is the best route found so far.
type Guess struct {
	Cost  float64
	Route []da.Index
}

func infeasible() Guess {
	return Guess{Cost: pkg.INF_COST, Route: []da.Index{}}
}

func (g Guess) IsFound() bool {
	return len(g.Route) > 0
}

// update replaces g with other if other visits more waypoints, or as many for less.
func (g *Guess) update(other Guess) {
	if len(other.Route) > len(g.Route) ||
		(len(other.Route) == len(g.Route) && other.Cost < g.Cost) {
		g.Cost = other.Cost
		g.Route = other.Route
	}
}

// interior lists the waypoints strictly between start and end, in the order a leg from start
// to end passes them.
func interior(start, end da.Index) []da.Index {
	between := make([]da.Index, 0, da.RemainingDistance(start, end))
	if start < end {
		for i := start + 1; i < end; i++ {
			between = append(between, i)
		}
	} else {
		for i := start; i > end+1; i-- {
			between = append(between, i-1)
		}
	}
	return between
}

func validate(dm *da.DistanceMatrix, start, end da.Index, limit int) ([]da.Index, error) {
	if !dm.Contains(start) || !dm.Contains(end) {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrWaypointOutOfRange, start, end)
	}
	between := interior(start, end)
	if len(between) > limit {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooManyWaypoints, len(between), limit)
	}
	return between, nil
}

// OneWay tries every subset of the waypoints between start and end. maxLength pins the route
// length unless it is pkg.NO_MAX_LENGTH.
func OneWay(dm *da.DistanceMatrix, start, end da.Index, maxCost float64, maxLength int) (Guess, error) {
	between, err := validate(dm, start, end, MAX_ONE_WAY_INTERIOR)
	if err != nil {
		return Guess{}, err
	}

	best := infeasible()
	if start == end {
		if maxLength == pkg.NO_MAX_LENGTH || maxLength == 1 {
			best.update(Guess{Cost: 0, Route: []da.Index{start}})
		}
		return best, nil
	}

	for mask := 0; mask < 1<<len(between); mask++ {
		route := make([]da.Index, 0, len(between)+2)
		route = append(route, start)
		for i, w := range between {
			if mask&(1<<i) != 0 {
				route = append(route, w)
			}
		}
		route = append(route, end)

		if maxLength != pkg.NO_MAX_LENGTH && len(route) != maxLength {
			continue
		}

		cost := dm.RouteCost(route)
		if cost > maxCost {
			continue
		}
		best.update(Guess{Cost: cost, Route: route})
	}

	return best, nil
}

// RoundTrip tries every split of the waypoints between start and end into an outbound leg, a
// return leg and skipped waypoints. The budget is not split between the legs, so the result
// bounds what any ratio can achieve.
func RoundTrip(dm *da.DistanceMatrix, start, end da.Index, maxCost float64) (Guess, error) {
	between, err := validate(dm, start, end, MAX_ROUND_TRIP_INTERIOR)
	if err != nil {
		return Guess{}, err
	}

	best := infeasible()
	if start == end {
		best.update(Guess{Cost: 0, Route: []da.Index{start}})
		return best, nil
	}

	assignments := 1
	for range between {
		assignments *= 3
	}

	for code := 0; code < assignments; code++ {
		outbound := make([]da.Index, 0, len(between))
		inbound := make([]da.Index, 0, len(between))
		c := code
		for _, w := range between {
			switch c % 3 {
			case 1:
				outbound = append(outbound, w)
			case 2:
				inbound = append(inbound, w)
			}
			c /= 3
		}

		route := make([]da.Index, 0, len(outbound)+len(inbound)+3)
		route = append(route, start)
		route = append(route, outbound...)
		route = append(route, end)
		for i := len(inbound) - 1; i >= 0; i-- {
			route = append(route, inbound[i])
		}
		route = append(route, start)

		cost := dm.RouteCost(route)
		if cost > maxCost {
			continue
		}
		best.update(Guess{Cost: cost, Route: route})
	}

	return best, nil
}
