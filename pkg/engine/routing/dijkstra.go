package routing

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/util"
)

// LabelSettingSearch is a Dijkstra variant over (waypoint, visited) states. It finds the route
// from start to end visiting the most waypoints within the budget, and the cheapest among those.
//
// Not safe for concurrent use; the queue, label and predecessor tables are reset on every call.
type LabelSettingSearch struct {
	dm *da.DistanceMatrix

	pq       *da.MinHeap[*da.Label]
	labels   map[da.SearchState]*da.Label // best known label per state, also the settled set
	previous map[da.SearchState]da.SearchState

	start, end da.Index
	maxCost    float64
	options    Options
	stats      SearchStats
}

func NewLabelSettingSearch(dm *da.DistanceMatrix) *LabelSettingSearch {
	return &LabelSettingSearch{
		dm: dm,
		pq: da.NewLabelQueue(),
	}
}

func (ls *LabelSettingSearch) validate(start, end da.Index, maxCost float64, cfg Options) error {
	if !ls.dm.Contains(start) || !ls.dm.Contains(end) {
		return fmt.Errorf("%w: start=%d end=%d, number of waypoints=%d", ErrWaypointOutOfRange,
			start, end, ls.dm.Size())
	}
	if !(maxCost >= 0) {
		return fmt.Errorf("%w: got %v", ErrNegativeBudget, maxCost)
	}
	if cfg.HasMaxLength && cfg.MaxLength < pkg.MIN_MAX_LENGTH {
		return fmt.Errorf("%w: got %d", ErrMaxLengthTooSmall, cfg.MaxLength)
	}
	if cfg.Forbidden.Contains(start) || cfg.Forbidden.Contains(end) {
		return fmt.Errorf("%w: start=%d end=%d", ErrForbiddenEndpoint, start, end)
	}
	return nil
}

func (ls *LabelSettingSearch) clearState() {
	legLength := int(da.RemainingDistance(ls.start, ls.end)) + 1
	ls.pq.Clear()
	ls.labels = make(map[da.SearchState]*da.Label, legLength*LABELS_PER_WAYPOINT)
	ls.previous = make(map[da.SearchState]da.SearchState, legLength*LABELS_PER_WAYPOINT)
	ls.stats = SearchStats{}
}

func (ls *LabelSettingSearch) pushStart() {
	start := da.NewLabel(da.NewSearchState(ls.start, 1), da.RemainingDistance(ls.start, ls.end), 0)
	ls.labels[start.GetState()] = start
	ls.pq.Insert(start)
	ls.stats.Pushed++
}

// ShortestPath searches a route from start to end costing at most maxCost. The direction of the
// leg follows from the endpoints: increasing indices if start < end, decreasing otherwise.
// An infeasible query returns a result with IsFound() == false and a nil error.
func (ls *LabelSettingSearch) ShortestPath(start, end da.Index, maxCost float64, opts ...Option) (*SearchResult, error) {
	cfg := buildOptions(opts)
	if err := ls.validate(start, end, maxCost, cfg); err != nil {
		return nil, err
	}

	ls.start, ls.end = start, end
	ls.maxCost = maxCost
	ls.options = cfg
	ls.clearState()
	ls.pushStart()

	for !ls.pq.IsEmpty() {
		popped, _ := ls.pq.ExtractMin()
		ls.stats.Popped++

		if popped.IsDeleted() {
			ls.stats.StalePops++
			continue
		}

		// end reached
		if popped.GetWaypoint() == ls.end &&
			(!ls.options.HasMaxLength || int(popped.GetVisited()) == ls.options.MaxLength) {
			route, err := ls.reconstructRoute(popped.GetState())
			if err != nil {
				return nil, err
			}
			return newSearchResult(popped.GetCost(), route, ls.stats), nil
		}

		// popped stays live in ls.labels: that marks the state as settled, a worse rediscovery
		// of it is discarded in relax.

		ls.forEachCandidate(popped.GetWaypoint(), func(next da.Index) {
			ls.relax(popped, next)
		})
	}

	return newInfeasibleResult(ls.stats), nil
}

// forEachCandidate calls fn for every waypoint after from, up to and including the end waypoint,
// in the direction of the leg. Forbidden waypoints are skipped.
func (ls *LabelSettingSearch) forEachCandidate(from da.Index, fn func(next da.Index)) {
	switch pkg.DirectionOf(int(from), int(ls.end)) {
	case pkg.FORWARD:
		for next := int(from) + 1; next <= int(ls.end); next++ {
			if !ls.options.Forbidden.Contains(da.Index(next)) {
				fn(da.Index(next))
			}
		}
	case pkg.BACKWARD:
		for next := int(from) - 1; next >= int(ls.end); next-- {
			if !ls.options.Forbidden.Contains(da.Index(next)) {
				fn(da.Index(next))
			}
		}
	default:
		// already at the end waypoint, a leg never returns to it
	}
}

func (ls *LabelSettingSearch) relax(popped *da.Label, next da.Index) {
	edgeCost := ls.dm.Cost(popped.GetWaypoint(), next)
	if math.IsInf(edgeCost, 1) {
		// the matrix does not permit this direction
		return
	}

	newCost := popped.GetCost() + edgeCost
	newVisited := popped.GetVisited() + 1

	if newCost > ls.maxCost || (ls.options.HasMaxLength && int(newVisited) > ls.options.MaxLength) {
		return
	}

	nextState := da.NewSearchState(next, newVisited)

	if existing, ok := ls.labels[nextState]; ok {
		if !existing.IsDeleted() && existing.GetCost() <= newCost {
			// existing label is cheaper or equal
			return
		}
		if !existing.IsDeleted() {
			existing.MarkDeleted()
			ls.stats.Superseded++
		}
	}

	label := da.NewLabel(nextState, da.RemainingDistance(next, ls.end), newCost)
	ls.labels[nextState] = label
	ls.previous[nextState] = popped.GetState()
	ls.pq.Insert(label)
	ls.stats.Pushed++
}

// reconstructRoute walks the predecessor table back from target to the start waypoint.
func (ls *LabelSettingSearch) reconstructRoute(target da.SearchState) ([]da.Index, error) {
	route := make([]da.Index, 0, target.GetVisited())
	route = append(route, target.GetWaypoint())

	via := target
	for via.GetWaypoint() != ls.start {
		prev, ok := ls.previous[via]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor recorded for state %v", ErrInvariantViolation, via)
		}
		via = prev
		route = append(route, via.GetWaypoint())

		if len(route) > int(target.GetVisited()) {
			break
		}
	}

	if len(route) != int(target.GetVisited()) {
		return nil, fmt.Errorf("%w: route to %v has %d waypoints", ErrInvariantViolation, target, len(route))
	}

	return util.ReverseG(route), nil
}
