package engine

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/Waypointx/pkg"
	"github.com/lintang-b-s/Waypointx/pkg/concurrent"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine/naive"
	"github.com/lintang-b-s/Waypointx/pkg/engine/routing"
	"github.com/lintang-b-s/Waypointx/pkg/metrics"
	"github.com/lintang-b-s/Waypointx/pkg/parser"
	"go.uber.org/zap"
)

var ErrNoWaypoints = errors.New("engine: no waypoints")

// Engine owns a waypoint set and its distance matrix. Every query runs on its own search
// instance, so an Engine is safe for concurrent use.
type Engine struct {
	waypoints []da.Waypoint
	dm        *da.DistanceMatrix

	oneWayCache    *lru.Cache[queryKey, *routing.SearchResult]
	roundTripCache *lru.Cache[queryKey, *routing.RoundTripResult]

	log *zap.Logger
}

// NewEngine sorts a copy of waypoints and precomputes the distance matrix. cacheSize bounds the
// number of results kept per query kind, 0 disables caching.
func NewEngine(waypoints []da.Waypoint, cacheSize int, log *zap.Logger) (*Engine, error) {
	if len(waypoints) == 0 {
		return nil, ErrNoWaypoints
	}

	sorted := make([]da.Waypoint, len(waypoints))
	copy(sorted, waypoints)
	da.SortWaypoints(sorted)

	log.Info("Building distance matrix...", zap.Int("waypoints", len(sorted)))
	e := &Engine{
		waypoints: sorted,
		dm:        da.NewDistanceMatrix(sorted, pkg.BOTH),
		log:       log,
	}

	if cacheSize > 0 {
		var err error
		e.oneWayCache, err = lru.New[queryKey, *routing.SearchResult](cacheSize)
		if err != nil {
			return nil, err
		}
		e.roundTripCache, err = lru.New[queryKey, *routing.RoundTripResult](cacheSize)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func NewEngineFromFile(path string, cacheSize int, log *zap.Logger) (*Engine, error) {
	log.Info("Reading waypoints from ", zap.String("path", path))
	waypoints, err := parser.LoadWaypoints(path)
	if err != nil {
		return nil, fmt.Errorf("load waypoints %s: %w", path, err)
	}
	return NewEngine(waypoints, cacheSize, log)
}

func (e *Engine) GetWaypoints() []da.Waypoint {
	return e.waypoints
}

func (e *Engine) GetWaypoint(id da.Index) da.Waypoint {
	return e.waypoints[id]
}

func (e *Engine) NumberOfWaypoints() int {
	return len(e.waypoints)
}

func (e *Engine) GetDistanceMatrix() *da.DistanceMatrix {
	return e.dm
}

// LastWaypoint is the index of the waypoint furthest along the (x, y) order.
func (e *Engine) LastWaypoint() da.Index {
	return da.Index(len(e.waypoints) - 1)
}

// ShortestPath runs one leg. Cached results are shared between callers and must not be modified.
func (e *Engine) ShortestPath(q OneWayQuery) (*routing.SearchResult, error) {
	key := q.key()
	if e.oneWayCache != nil {
		if res, ok := e.oneWayCache.Get(key); ok {
			metrics.Observe(metrics.SearchObservation{Kind: metrics.KIND_ONE_WAY, Outcome: metrics.OUTCOME_CACHED})
			return res, nil
		}
	}

	now := time.Now()
	res, err := routing.NewLabelSettingSearch(e.dm).ShortestPath(q.Start, q.End, q.MaxCost, q.options()...)
	elapsed := time.Since(now)
	if err != nil {
		e.log.Debug("shortest path rejected", zap.Uint32("start", uint32(q.Start)),
			zap.Uint32("end", uint32(q.End)), zap.Float64("maxCost", q.MaxCost), zap.Error(err))
		metrics.Observe(metrics.SearchObservation{Kind: metrics.KIND_ONE_WAY, Outcome: metrics.OUTCOME_REJECTED})
		return nil, err
	}

	stats := res.GetStats()
	e.log.Debug("shortest path", zap.Uint32("start", uint32(q.Start)), zap.Uint32("end", uint32(q.End)),
		zap.Float64("maxCost", q.MaxCost), zap.Bool("found", res.IsFound()), zap.Int("visited", res.GetVisited()),
		zap.Float64("cost", res.GetCost()), zap.Int("popped", stats.Popped), zap.Duration("elapsed", elapsed))
	metrics.Observe(metrics.SearchObservation{
		Kind:      metrics.KIND_ONE_WAY,
		Outcome:   outcome(res.IsFound()),
		Elapsed:   elapsed,
		Popped:    stats.Popped,
		StalePops: stats.StalePops,
		Visited:   res.GetVisited(),
	})

	if e.oneWayCache != nil {
		e.oneWayCache.Add(key, res)
	}
	return res, nil
}

// RoundTrip plans start -> end -> start. Cached results are shared and must not be modified.
func (e *Engine) RoundTrip(q RoundTripQuery) (*routing.RoundTripResult, error) {
	key := q.key()
	if e.roundTripCache != nil {
		if res, ok := e.roundTripCache.Get(key); ok {
			metrics.Observe(metrics.SearchObservation{Kind: metrics.KIND_ROUND_TRIP, Outcome: metrics.OUTCOME_CACHED})
			return res, nil
		}
	}

	now := time.Now()
	res, err := routing.NewRoundTripSearch(e.dm).Plan(q.Start, q.End, q.MaxCost, q.Ratio)
	elapsed := time.Since(now)
	if err != nil {
		e.log.Debug("round trip rejected", zap.Uint32("start", uint32(q.Start)),
			zap.Uint32("end", uint32(q.End)), zap.Float64("maxCost", q.MaxCost), zap.Float64("ratio", q.Ratio),
			zap.Error(err))
		metrics.Observe(metrics.SearchObservation{Kind: metrics.KIND_ROUND_TRIP, Outcome: metrics.OUTCOME_REJECTED})
		return nil, err
	}

	stats := res.GetStats()
	e.log.Debug("round trip", zap.Uint32("start", uint32(q.Start)), zap.Uint32("end", uint32(q.End)),
		zap.Float64("maxCost", q.MaxCost), zap.Float64("forwardBudget", res.GetForwardBudget()),
		zap.Bool("found", res.IsFound()), zap.Int("visited", res.GetVisited()),
		zap.Float64("cost", res.GetCost()), zap.Int("popped", stats.Popped), zap.Duration("elapsed", elapsed))
	metrics.Observe(metrics.SearchObservation{
		Kind:      metrics.KIND_ROUND_TRIP,
		Outcome:   outcome(res.IsFound()),
		Elapsed:   elapsed,
		Popped:    stats.Popped,
		StalePops: stats.StalePops,
		Visited:   res.GetVisited(),
	})

	if e.roundTripCache != nil {
		e.roundTripCache.Add(key, res)
	}
	return res, nil
}

func outcome(found bool) string {
	if found {
		return metrics.OUTCOME_FOUND
	}
	return metrics.OUTCOME_INFEASIBLE
}

// ShortestPathBatch runs every query on a pool of numWorkers goroutines. Results keep query order.
func (e *Engine) ShortestPathBatch(queries []OneWayQuery, numWorkers int) []BatchResult[*routing.SearchResult] {
	return concurrent.Map(numWorkers, queries, func(q OneWayQuery) BatchResult[*routing.SearchResult] {
		now := time.Now()
		res, err := e.ShortestPath(q)
		return BatchResult[*routing.SearchResult]{Result: res, Err: err, Elapsed: time.Since(now)}
	})
}

// RoundTripBatch is ShortestPathBatch for round trips.
func (e *Engine) RoundTripBatch(queries []RoundTripQuery, numWorkers int) []BatchResult[*routing.RoundTripResult] {
	return concurrent.Map(numWorkers, queries, func(q RoundTripQuery) BatchResult[*routing.RoundTripResult] {
		now := time.Now()
		res, err := e.RoundTrip(q)
		return BatchResult[*routing.RoundTripResult]{Result: res, Err: err, Elapsed: time.Since(now)}
	})
}

// BruteForceShortestPath answers q by enumeration, for verification on small inputs.
// Forbidden waypoints are not supported.
func (e *Engine) BruteForceShortestPath(q OneWayQuery) (naive.Guess, error) {
	return naive.OneWay(e.dm, q.Start, q.End, q.MaxCost, q.MaxLength)
}

// BruteForceRoundTrip bounds what RoundTrip can reach for any ratio.
func (e *Engine) BruteForceRoundTrip(q RoundTripQuery) (naive.Guess, error) {
	return naive.RoundTrip(e.dm, q.Start, q.End, q.MaxCost)
}
