package controllers

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/http/usecases"
)

type PlanningService interface {
	ComputeRoute(origX, origY, dstX, dstY, maxCost float64, maxLength int) (usecases.PlannedRoute, error)
	ComputeRoundTrip(origX, origY, dstX, dstY, maxCost, ratio float64) (usecases.PlannedRoundTrip, error)
	Waypoints() []da.Waypoint
}
