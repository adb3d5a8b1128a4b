package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine"
	"github.com/lintang-b-s/Waypointx/pkg/logger"
	"github.com/lintang-b-s/Waypointx/pkg/util"
	"go.uber.org/zap"
)

const (
	MODE_ONE_WAY    = "oneway"
	MODE_ROUND_TRIP = "roundtrip"
)

var (
	input   = flag.String("input", "", "waypoint file (text, .osm or .pbf, optionally .bz2)")
	budgets = flag.String("budgets", util.FormatFloatList(pkg.DEFAULT_BUDGETS), "comma separated budgets, one query each")
	mode    = flag.String("mode", MODE_ROUND_TRIP, "oneway or roundtrip")
	ratio   = flag.Float64("ratio", pkg.DEFAULT_RATIO, "share of the budget for the way out (roundtrip)")
	length  = flag.Int("length", pkg.NO_MAX_LENGTH, "exact number of waypoints on the route, 0 for any (oneway)")
	verify  = flag.Bool("verify", false, "cross-check every result against brute force (small inputs only)")
	workers = flag.Int("workers", runtime.NumCPU(), "number of queries run in parallel")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if *input == "" {
		logger.Fatal("missing -input")
	}
	maxCosts, err := util.ParseFloatList(*budgets)
	if err != nil {
		logger.Fatal("parse -budgets", zap.Error(err))
	}

	planningEngine, err := engine.NewEngineFromFile(*input, 0, logger)
	if err != nil {
		logger.Fatal("start engine", zap.Error(err))
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch *mode {
	case MODE_ONE_WAY:
		runOneWay(out, planningEngine, maxCosts, logger)
	case MODE_ROUND_TRIP:
		runRoundTrip(out, planningEngine, maxCosts, logger)
	default:
		logger.Fatal("unknown -mode", zap.String("mode", *mode))
	}
}

func runOneWay(out *bufio.Writer, e *engine.Engine, maxCosts []float64, log *zap.Logger) {
	queries := make([]engine.OneWayQuery, len(maxCosts))
	for i, maxCost := range maxCosts {
		queries[i] = engine.OneWayQuery{Start: 0, End: e.LastWaypoint(), MaxCost: maxCost, MaxLength: *length}
	}

	for i, res := range e.ShortestPathBatch(queries, *workers) {
		if res.Err != nil {
			fmt.Fprintf(out, "%g rejected: %v\n\n", maxCosts[i], res.Err)
			continue
		}
		printRoute(out, e, maxCosts[i], res.Result.GetCost(), res.Result.GetRoute(), res.Elapsed.Seconds())

		if *verify {
			want, err := e.BruteForceShortestPath(queries[i])
			if err != nil {
				log.Warn("verification skipped", zap.Float64("budget", maxCosts[i]), zap.Error(err))
				continue
			}
			if len(want.Route) != res.Result.GetVisited() || !da.Eq(want.Cost, res.Result.GetCost()) {
				log.Error("verification failed", zap.Float64("budget", maxCosts[i]),
					zap.Int("want_points", len(want.Route)), zap.Float64("want_cost", want.Cost))
			}
		}
	}
}

func runRoundTrip(out *bufio.Writer, e *engine.Engine, maxCosts []float64, log *zap.Logger) {
	queries := make([]engine.RoundTripQuery, len(maxCosts))
	for i, maxCost := range maxCosts {
		queries[i] = engine.RoundTripQuery{Start: 0, End: e.LastWaypoint(), MaxCost: maxCost, Ratio: *ratio}
	}

	for i, res := range e.RoundTripBatch(queries, *workers) {
		if res.Err != nil {
			fmt.Fprintf(out, "%g rejected: %v\n\n", maxCosts[i], res.Err)
			continue
		}
		printRoute(out, e, maxCosts[i], res.Result.GetCost(), res.Result.GetRoute(), res.Elapsed.Seconds())

		if *verify {
			bound, err := e.BruteForceRoundTrip(queries[i])
			if err != nil {
				log.Warn("verification skipped", zap.Float64("budget", maxCosts[i]), zap.Error(err))
				continue
			}
			if res.Result.GetVisited() > len(bound.Route) {
				log.Error("verification failed", zap.Float64("budget", maxCosts[i]),
					zap.Int("bound_points", len(bound.Route)), zap.Int("got_points", res.Result.GetVisited()))
			}
		}
	}
}

// printRoute writes "budget cost (k points)", the route coordinates and the elapsed seconds.
func printRoute(out *bufio.Writer, e *engine.Engine, maxCost, cost float64, route []da.Index, seconds float64) {
	if len(route) == 0 {
		fmt.Fprintf(out, "%g no route (0 points)\n", maxCost)
	} else {
		fmt.Fprintf(out, "%g %.1f (%d points)\n", maxCost, cost, len(route))
	}
	for _, id := range route {
		w := e.GetWaypoint(id)
		fmt.Fprintf(out, "%g %g\t", w.GetX(), w.GetY())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%.5f seconds\n\n", seconds)
}
