package routing

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/util"
)

// RoundTripSearch plans start -> end -> start as two sequential label-setting searches. The
// backward leg may not revisit the interior waypoints of the forward leg.
type RoundTripSearch struct {
	dm     *da.DistanceMatrix
	search *LabelSettingSearch
}

func NewRoundTripSearch(dm *da.DistanceMatrix) *RoundTripSearch {
	return &RoundTripSearch{
		dm:     dm,
		search: NewLabelSettingSearch(dm),
	}
}

// ForwardBudget splits maxCost between the two legs: ratio of maxCost, but at least the direct
// distance and at most what leaves the backward leg its direct distance.
func ForwardBudget(maxCost, ratio, direct float64) float64 {
	share := ratio * maxCost
	if math.IsNaN(share) {
		// ratio 0 with an infinite budget
		share = 0
	}
	return util.Clamp(share, direct, maxCost-direct)
}

func (rt *RoundTripSearch) validate(start, end da.Index, maxCost, ratio float64) error {
	if rt.dm.GetDirection() != pkg.BOTH {
		return fmt.Errorf("%w: direction %v", ErrOneWayMatrix, rt.dm.GetDirection())
	}
	if !rt.dm.Contains(start) || !rt.dm.Contains(end) {
		return fmt.Errorf("%w: start=%d end=%d, number of waypoints=%d", ErrWaypointOutOfRange,
			start, end, rt.dm.Size())
	}
	if !(maxCost >= 0) {
		return fmt.Errorf("%w: got %v", ErrNegativeBudget, maxCost)
	}
	if !(ratio >= 0 && ratio <= 1) {
		return fmt.Errorf("%w: got %v", ErrRatioOutOfRange, ratio)
	}
	direct := rt.dm.Distance(start, end)
	if maxCost < 2*direct {
		return fmt.Errorf("%w: max cost %v, direct distance %v", ErrBudgetBelowDirectDistance,
			maxCost, direct)
	}
	return nil
}

// Plan returns the combined route start -> end -> start. If either leg is infeasible the result
// has IsFound() == false and a nil error.
func (rt *RoundTripSearch) Plan(start, end da.Index, maxCost, ratio float64) (*RoundTripResult, error) {
	if err := rt.validate(start, end, maxCost, ratio); err != nil {
		return nil, err
	}

	direct := rt.dm.Distance(start, end)
	forwardBudget := ForwardBudget(maxCost, ratio, direct)

	forward, err := rt.search.ShortestPath(start, end, forwardBudget)
	if err != nil {
		return nil, fmt.Errorf("%s leg: %w", ROUND_TRIP_FORWARD_LEG, err)
	}

	res := &RoundTripResult{
		forward:       forward,
		forwardBudget: forwardBudget,
		cost:          pkg.INF_COST,
		route:         []da.Index{},
	}
	if !forward.IsFound() {
		return res, nil
	}

	// maxCost-direct may round up, the forward cost can then leave the way back an ulp short of
	// its direct distance
	backwardBudget := math.Max(maxCost-forward.GetCost(), direct)

	forbidden := da.NewIndexSet(forward.interior()...)
	backward, err := rt.search.ShortestPath(end, start, backwardBudget, WithForbidden(forbidden))
	if err != nil {
		return nil, fmt.Errorf("%s leg: %w", ROUND_TRIP_BACKWARD_LEG, err)
	}
	res.backward = backward
	if !backward.IsFound() {
		return res, nil
	}

	route := make([]da.Index, 0, forward.GetVisited()+backward.GetVisited()-1)
	route = append(route, forward.route...)
	route = append(route, backward.route[1:]...)

	res.route = route
	res.cost = forward.GetCost() + backward.GetCost()
	return res, nil
}
