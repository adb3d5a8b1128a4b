package main

import (
	"context"
	"flag"
	"os"

	"github.com/lintang-b-s/Waypointx/pkg/engine"
	"github.com/lintang-b-s/Waypointx/pkg/http"
	"github.com/lintang-b-s/Waypointx/pkg/http/usecases"
	"github.com/lintang-b-s/Waypointx/pkg/logger"
	"github.com/lintang-b-s/Waypointx/pkg/spatialindex"
	"github.com/lintang-b-s/Waypointx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	waypointsFile = flag.String("waypoints", "", "waypoint file (text, .osm or .pbf, optionally .bz2), overrides WAYPOINTS_FILE")
	rtreeRadius   = flag.Float64("rtree_initial_radius", 1.0, "first half-width tried when snapping coordinates to waypoints")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("read config", zap.Error(err))
	}
	viper.SetDefault("WAYPOINTS_FILE", "./data/waypoints.txt")
	viper.SetDefault("SNAP_RADIUS", 0.0)
	viper.SetDefault("CACHE_SIZE", 1024)

	path := viper.GetString("WAYPOINTS_FILE")
	if *waypointsFile != "" {
		path = *waypointsFile
	}

	planningEngine, err := engine.NewEngineFromFile(path, viper.GetInt("CACHE_SIZE"), logger)
	if err != nil {
		logger.Fatal("start engine", zap.Error(err))
	}

	rtree := spatialindex.NewRtree(*rtreeRadius)
	rtree.Build(planningEngine.GetWaypoints(), logger)

	planningService := usecases.NewPlanningService(logger, planningEngine, rtree, viper.GetFloat64("SNAP_RADIUS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api, err := http.NewServer(logger).Use(ctx, logger, planningService)
	if err != nil {
		logger.Fatal("start api", zap.Error(err))
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- api.Wait()
	}()

	select {
	case signal := <-waitSignal():
		logger.Info("Waypointx Server Stopped", zap.String("signal", signal.String()))
		cleanup()
		<-serverDone
	case err := <-serverDone:
		logger.Error("Waypointx Server Stopped", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}

func waitSignal() <-chan os.Signal {
	c := make(chan os.Signal, 1)
	go func() {
		c <- http.GracefulShutdown()
	}()
	return c
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
