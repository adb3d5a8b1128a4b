package controllers

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Waypointx/pkg"
	helper "github.com/lintang-b-s/Waypointx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type planningAPI struct {
	planningService PlanningService
	log             *zap.Logger
	validator       *validator.Validate
	trans           ut.Translator
}

func New(planningService PlanningService, log *zap.Logger) *planningAPI {
	validate, trans := newValidator()
	return &planningAPI{
		planningService: planningService,
		log:             log,
		validator:       validate,
		trans:           trans,
	}
}

func (api *planningAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoute", api.computeRoute)
	group.GET("/computeRoundTrip", api.computeRoundTrip)
	group.GET("/waypoints", api.waypoints)
}

// computeRoute
//
//	@Summary		route visiting the most waypoints within a budget
//	@Description	snaps origin and destination to their nearest waypoints, then finds the route between them visiting the most waypoints with cost at most max_cost. Only waypoints in between origin and destination (by x, then y) are candidates.
//	@Tags			planning
//	@Param			origin_x		query	number	true	"origin x"
//	@Param			origin_y		query	number	true	"origin y"
//	@Param			destination_x	query	number	true	"destination x"
//	@Param			destination_y	query	number	true	"destination y"
//	@Param			max_cost		query	number	true	"budget"
//	@Param			max_length		query	integer	false	"exact number of waypoints on the route"
//	@Produce		application/json
//	@Router			/computeRoute [get]
//	@Success		200	{object}	computeRouteResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *planningAPI) computeRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeRouteRequest
		err     error
	)

	query := r.URL.Query()

	if request.OriginX, err = parseFloat(query, "origin_x"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.OriginY, err = parseFloat(query, "origin_y"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationX, err = parseFloat(query, "destination_x"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationY, err = parseFloat(query, "destination_y"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.MaxCost, err = parseFloat(query, "max_cost"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.MaxLength, err = parseOptionalInt(query, "max_length", pkg.NO_MAX_LENGTH); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validate(w, r, request) {
		return
	}

	route, err := api.planningService.ComputeRoute(request.OriginX, request.OriginY,
		request.DestinationX, request.DestinationY, request.MaxCost, request.MaxLength)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// computeRoundTrip
//
//	@Summary		round trip origin -> destination -> origin within a budget
//	@Description	the way out gets ratio of max_cost (at least the direct distance, at most what leaves the way back its direct distance), the way back gets the rest and never revisits a waypoint of the way out.
//	@Tags			planning
//	@Param			origin_x		query	number	true	"origin x"
//	@Param			origin_y		query	number	true	"origin y"
//	@Param			destination_x	query	number	true	"destination x"
//	@Param			destination_y	query	number	true	"destination y"
//	@Param			max_cost		query	number	true	"budget for both legs"
//	@Param			ratio			query	number	false	"share of the budget for the way out, default 0.5"
//	@Produce		application/json
//	@Router			/computeRoundTrip [get]
//	@Success		200	{object}	computeRoundTripResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *planningAPI) computeRoundTrip(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request computeRoundTripRequest
		err     error
	)

	query := r.URL.Query()

	if request.OriginX, err = parseFloat(query, "origin_x"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.OriginY, err = parseFloat(query, "origin_y"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationX, err = parseFloat(query, "destination_x"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationY, err = parseFloat(query, "destination_y"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.MaxCost, err = parseFloat(query, "max_cost"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Ratio, err = parseOptionalFloat(query, "ratio", pkg.DEFAULT_RATIO); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validate(w, r, request) {
		return
	}

	trip, err := api.planningService.ComputeRoundTrip(request.OriginX, request.OriginY,
		request.DestinationX, request.DestinationY, request.MaxCost, request.Ratio)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComputeRoundTripResponse(trip)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// waypoints
//
//	@Summary		indexed waypoints
//	@Description	waypoints in index order, the order routes follow.
//	@Tags			planning
//	@Produce		application/json
//	@Router			/waypoints [get]
//	@Success		200	{object}	[]waypointResponse
func (api *planningAPI) waypoints(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewWaypointsResponse(api.planningService.Waypoints())},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
