package routing

import (
	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
)

// SearchStats counts queue work done by one search.
type SearchStats struct {
	Pushed     int `json:"pushed"`
	Popped     int `json:"popped"`
	StalePops  int `json:"stale_pops"` // popped labels that were soft-deleted
	Superseded int `json:"superseded"` // live labels replaced by a cheaper one
}

func (s SearchStats) Add(o SearchStats) SearchStats {
	return SearchStats{
		Pushed:     s.Pushed + o.Pushed,
		Popped:     s.Popped + o.Popped,
		StalePops:  s.StalePops + o.StalePops,
		Superseded: s.Superseded + o.Superseded,
	}
}

// SearchResult is the outcome of one leg. An infeasible query has cost pkg.INF_COST and no route.
// Results are immutable, the engine shares cached results between callers.
type SearchResult struct {
	cost  float64
	route []da.Index
	stats SearchStats
}

func newSearchResult(cost float64, route []da.Index, stats SearchStats) *SearchResult {
	return &SearchResult{cost: cost, route: route, stats: stats}
}

func newInfeasibleResult(stats SearchStats) *SearchResult {
	return &SearchResult{cost: pkg.INF_COST, route: []da.Index{}, stats: stats}
}

func (r *SearchResult) GetCost() float64 {
	return r.cost
}

// GetRoute returns a copy of the route, start and end included.
func (r *SearchResult) GetRoute() []da.Index {
	return cloneRoute(r.route)
}

func (r *SearchResult) GetVisited() int {
	return len(r.route)
}

func (r *SearchResult) IsFound() bool {
	return len(r.route) > 0
}

func (r *SearchResult) GetStats() SearchStats {
	return r.stats
}

// interior returns the route without its endpoints.
func (r *SearchResult) interior() []da.Index {
	if len(r.route) <= 2 {
		return nil
	}
	return r.route[1 : len(r.route)-1]
}

func cloneRoute(route []da.Index) []da.Index {
	cloned := make([]da.Index, len(route))
	copy(cloned, route)
	return cloned
}

// RoundTripResult is a forward leg start -> end followed by a backward leg end -> start.
type RoundTripResult struct {
	forward       *SearchResult
	backward      *SearchResult
	forwardBudget float64
	cost          float64
	route         []da.Index
}

func (r *RoundTripResult) GetForward() *SearchResult {
	return r.forward
}

// GetBackward is nil when the forward leg was infeasible.
func (r *RoundTripResult) GetBackward() *SearchResult {
	return r.backward
}

func (r *RoundTripResult) GetForwardBudget() float64 {
	return r.forwardBudget
}

func (r *RoundTripResult) GetCost() float64 {
	return r.cost
}

// GetRoute returns a copy of start -> ... -> end -> ... -> start.
func (r *RoundTripResult) GetRoute() []da.Index {
	return cloneRoute(r.route)
}

func (r *RoundTripResult) GetVisited() int {
	return len(r.route)
}

func (r *RoundTripResult) IsFound() bool {
	return len(r.route) > 0
}

func (r *RoundTripResult) GetStats() SearchStats {
	stats := r.forward.GetStats()
	if r.backward != nil {
		stats = stats.Add(r.backward.GetStats())
	}
	return stats
}
