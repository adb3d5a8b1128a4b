package main

import (
	"flag"
	"os"

	"github.com/lintang-b-s/Waypointx/pkg/generator"
	"github.com/lintang-b-s/Waypointx/pkg/logger"
	"github.com/lintang-b-s/Waypointx/pkg/parser"
	"go.uber.org/zap"
)

var (
	count  = flag.Int("count", 100, "number of waypoints to generate")
	seed   = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	output = flag.String("output", "", "output file, .bz2 for compressed; stdout if empty")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	gen := generator.NewTimeSeededGenerator()
	if *seed != 0 {
		gen = generator.NewGenerator(*seed)
	}

	waypoints, err := gen.Generate(*count)
	if err != nil {
		logger.Fatal("generate waypoints", zap.Error(err))
	}

	if *output == "" {
		if err := parser.WriteWaypoints(os.Stdout, waypoints); err != nil {
			logger.Fatal("write waypoints", zap.Error(err))
		}
		return
	}

	if err := parser.SaveWaypoints(*output, waypoints); err != nil {
		logger.Fatal("save waypoints", zap.Error(err))
	}
	logger.Info("waypoints saved", zap.String("output", *output), zap.Int("count", len(waypoints)))
}
