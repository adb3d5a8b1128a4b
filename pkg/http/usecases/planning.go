package usecases

import (
	"errors"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine"
	"github.com/lintang-b-s/Waypointx/pkg/engine/routing"
	"github.com/lintang-b-s/Waypointx/pkg/geo"
	"github.com/lintang-b-s/Waypointx/pkg/util"
	"go.uber.org/zap"
)

// PlannedRoute is a found route with its geometry.
type PlannedRoute struct {
	Cost      float64
	Route     []da.Index
	Waypoints []da.Waypoint
	Polyline  string
	Stats     routing.SearchStats
}

type PlannedRoundTrip struct {
	PlannedRoute
	Forward       []da.Index
	Backward      []da.Index
	ForwardBudget float64
}

type PlanningService struct {
	log          *zap.Logger
	engine       PlanningEngine
	spatialIndex SpatialIndex
	snapRadius   float64
}

// NewPlanningService. snapRadius bounds how far a requested coordinate may be from its waypoint,
// 0 for unbounded.
func NewPlanningService(log *zap.Logger, engine PlanningEngine, spatialIndex SpatialIndex,
	snapRadius float64) *PlanningService {
	return &PlanningService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		snapRadius:   snapRadius,
	}
}

func (ps *PlanningService) Waypoints() []da.Waypoint {
	return ps.engine.GetWaypoints()
}

// ComputeRoute snaps origin and destination to their nearest waypoints and plans one leg.
func (ps *PlanningService) ComputeRoute(origX, origY, dstX, dstY, maxCost float64, maxLength int,
) (PlannedRoute, error) {
	start, end, err := ps.snapOrigDest(origX, origY, dstX, dstY)
	if err != nil {
		return PlannedRoute{}, err
	}

	res, err := ps.engine.ShortestPath(engine.OneWayQuery{
		Start:     start,
		End:       end,
		MaxCost:   maxCost,
		MaxLength: maxLength,
	})
	if err != nil {
		return PlannedRoute{}, wrapRoutingError(err)
	}
	if !res.IsFound() {
		return PlannedRoute{}, util.WrapErrorf(ERRNOROUTEFOUND, util.ErrNotFound,
			"no route from waypoint %d to %d within %v", start, end, maxCost)
	}

	return ps.newPlannedRoute(res.GetCost(), res.GetRoute(), res.GetStats()), nil
}

// ComputeRoundTrip is ComputeRoute for origin -> destination -> origin.
func (ps *PlanningService) ComputeRoundTrip(origX, origY, dstX, dstY, maxCost, ratio float64,
) (PlannedRoundTrip, error) {
	start, end, err := ps.snapOrigDest(origX, origY, dstX, dstY)
	if err != nil {
		return PlannedRoundTrip{}, err
	}

	res, err := ps.engine.RoundTrip(engine.RoundTripQuery{
		Start:   start,
		End:     end,
		MaxCost: maxCost,
		Ratio:   ratio,
	})
	if err != nil {
		return PlannedRoundTrip{}, wrapRoutingError(err)
	}
	if !res.IsFound() {
		return PlannedRoundTrip{}, util.WrapErrorf(ERRNOROUTEFOUND, util.ErrNotFound,
			"no round trip via waypoint %d from %d within %v", end, start, maxCost)
	}

	return PlannedRoundTrip{
		PlannedRoute:  ps.newPlannedRoute(res.GetCost(), res.GetRoute(), res.GetStats()),
		Forward:       res.GetForward().GetRoute(),
		Backward:      res.GetBackward().GetRoute(),
		ForwardBudget: res.GetForwardBudget(),
	}, nil
}

func (ps *PlanningService) newPlannedRoute(cost float64, route []da.Index, stats routing.SearchStats) PlannedRoute {
	all := ps.engine.GetWaypoints()
	waypoints := make([]da.Waypoint, 0, len(route))
	for _, id := range route {
		waypoints = append(waypoints, all[id])
	}
	return PlannedRoute{
		Cost:      cost,
		Route:     route,
		Waypoints: waypoints,
		Polyline:  geo.PolylineFromWaypoints(all, route),
		Stats:     stats,
	}
}

func (ps *PlanningService) snapOrigDest(origX, origY, dstX, dstY float64) (da.Index, da.Index, error) {
	orig, err := ps.spatialIndex.Nearest(origX, origY, ps.snapRadius)
	if err != nil {
		return 0, 0, util.WrapErrorf(ERRNOWAYPOINTNEAR, util.ErrNotFound,
			"no waypoint near origin %v,%v", origX, origY)
	}
	dst, err := ps.spatialIndex.Nearest(dstX, dstY, ps.snapRadius)
	if err != nil {
		return 0, 0, util.WrapErrorf(ERRNOWAYPOINTNEAR, util.ErrNotFound,
			"no waypoint near destination %v,%v", dstX, dstY)
	}

	ps.log.Debug("snapped to waypoints", zap.Uint32("origin", uint32(orig.GetID())),
		zap.Uint32("destination", uint32(dst.GetID())))
	return orig.GetID(), dst.GetID(), nil
}

func wrapRoutingError(err error) error {
	if errors.Is(err, routing.ErrInvariantViolation) {
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
	return util.WrapErrorf(err, util.ErrBadParamInput, "%s", err.Error())
}
