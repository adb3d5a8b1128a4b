package controllers

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine/routing"
	"github.com/lintang-b-s/Waypointx/pkg/http/usecases"
)

type computeRouteRequest struct {
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	DestinationX float64 `json:"destination_x"`
	DestinationY float64 `json:"destination_y"`
	MaxCost      float64 `json:"max_cost" validate:"gte=0"`
	MaxLength    int     `json:"max_length" validate:"omitempty,gte=2"`
}

type computeRoundTripRequest struct {
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	DestinationX float64 `json:"destination_x"`
	DestinationY float64 `json:"destination_y"`
	MaxCost      float64 `json:"max_cost" validate:"gte=0"`
	Ratio        float64 `json:"ratio" validate:"gte=0,lte=1"`
}

type waypointResponse struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func newWaypointResponses(ids []da.Index, waypoints []da.Waypoint) []waypointResponse {
	resp := make([]waypointResponse, 0, len(ids))
	for i, id := range ids {
		resp = append(resp, waypointResponse{ID: uint32(id), X: waypoints[i].GetX(), Y: waypoints[i].GetY()})
	}
	return resp
}

type computeRouteResponse struct {
	Cost      float64             `json:"cost"`
	Visited   int                 `json:"visited"`
	Waypoints []waypointResponse  `json:"waypoints"`
	Path      string              `json:"path"`
	Stats     routing.SearchStats `json:"stats"`
}

func NewComputeRouteResponse(route usecases.PlannedRoute) computeRouteResponse {
	return computeRouteResponse{
		Cost:      route.Cost,
		Visited:   len(route.Route),
		Waypoints: newWaypointResponses(route.Route, route.Waypoints),
		Path:      route.Polyline,
		Stats:     route.Stats,
	}
}

type computeRoundTripResponse struct {
	computeRouteResponse
	Forward       []uint32 `json:"forward"`
	Backward      []uint32 `json:"backward"`
	ForwardBudget float64  `json:"forward_budget"`
}

func toIDs(route []da.Index) []uint32 {
	ids := make([]uint32, len(route))
	for i, id := range route {
		ids[i] = uint32(id)
	}
	return ids
}

func NewComputeRoundTripResponse(trip usecases.PlannedRoundTrip) computeRoundTripResponse {
	return computeRoundTripResponse{
		computeRouteResponse: NewComputeRouteResponse(trip.PlannedRoute),
		Forward:              toIDs(trip.Forward),
		Backward:             toIDs(trip.Backward),
		ForwardBudget:        trip.ForwardBudget,
	}
}

func NewWaypointsResponse(waypoints []da.Waypoint) []waypointResponse {
	resp := make([]waypointResponse, len(waypoints))
	for i, w := range waypoints {
		resp[i] = waypointResponse{ID: uint32(i), X: w.GetX(), Y: w.GetY()}
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
