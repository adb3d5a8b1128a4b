package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine"
	helper "github.com/lintang-b-s/Waypointx/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/Waypointx/pkg/http/usecases"
	"github.com/lintang-b-s/Waypointx/pkg/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	e, err := engine.NewEngine([]da.Waypoint{
		da.NewWaypoint(0, 0),
		da.NewWaypoint(1, 3),
		da.NewWaypoint(2, 0),
		da.NewWaypoint(3, 0),
	}, 0, zap.NewNop())
	require.NoError(t, err)
	rt := spatialindex.NewRtree(1)
	rt.Build(e.GetWaypoints(), zap.NewNop())

	router := httprouter.New()
	New(usecases.NewPlanningService(zap.NewNop(), e, rt, 0.5), zap.NewNop()).
		Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func serve(t *testing.T, router http.Handler, url string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestComputeRouteHandler(t *testing.T) {
	router := newTestRouter(t)

	rec, body := serve(t, router,
		"/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var data computeRouteResponse
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, 3.0, data.Cost)
	assert.Equal(t, 3, data.Visited)
	require.Len(t, data.Waypoints, 3)
	assert.Equal(t, uint32(2), data.Waypoints[1].ID)
	assert.Equal(t, 2.0, data.Waypoints[1].X)
	assert.NotEmpty(t, data.Path)
}

func TestComputeRouteHandlerErrors(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing max_cost",
			url:        "/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0",
			wantStatus: http.StatusBadRequest, wantCode: "bad_request",
		},
		{
			name:       "malformed coordinate",
			url:        "/api/computeRoute?origin_x=a&origin_y=0&destination_x=3&destination_y=0&max_cost=5",
			wantStatus: http.StatusBadRequest, wantCode: "bad_request",
		},
		{
			name:       "infinite budget",
			url:        "/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=Inf",
			wantStatus: http.StatusBadRequest, wantCode: "bad_request",
		},
		{
			name:       "negative budget",
			url:        "/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=-1",
			wantStatus: http.StatusBadRequest, wantCode: "bad_request",
		},
		{
			name:       "max_length too small",
			url:        "/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=5&max_length=1",
			wantStatus: http.StatusBadRequest, wantCode: "bad_request",
		},
		{
			name:       "over budget",
			url:        "/api/computeRoute?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=2",
			wantStatus: http.StatusNotFound, wantCode: "not_found",
		},
		{
			name:       "origin far from waypoints",
			url:        "/api/computeRoute?origin_x=50&origin_y=50&destination_x=3&destination_y=0&max_cost=100",
			wantStatus: http.StatusNotFound, wantCode: "not_found",
		},
	}

	router := newTestRouter(t)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, router, tt.url)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantCode, errResp.Error.Code)
			assert.NotEmpty(t, errResp.Error.Message)
			assert.Contains(t, body, "error")
		})
	}
}

func TestComputeRoundTripHandler(t *testing.T) {
	router := newTestRouter(t)

	rec, body := serve(t, router,
		"/api/computeRoundTrip?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=8")
	require.Equal(t, http.StatusOK, rec.Code)

	var data computeRoundTripResponse
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, 6.0, data.Cost)
	assert.Equal(t, 4, data.Visited)
	assert.Equal(t, []uint32{0, 2, 3}, data.Forward)
	assert.Equal(t, []uint32{3, 0}, data.Backward)
	assert.Equal(t, 4.0, data.ForwardBudget)

	rec, _ = serve(t, router,
		"/api/computeRoundTrip?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=8&ratio=1.5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, router,
		"/api/computeRoundTrip?origin_x=0&origin_y=0&destination_x=3&destination_y=0&max_cost=5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWaypointsHandler(t *testing.T) {
	rec, body := serve(t, newTestRouter(t), "/api/waypoints")
	require.Equal(t, http.StatusOK, rec.Code)

	var data []waypointResponse
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.Len(t, data, 4)
	assert.Equal(t, waypointResponse{ID: 1, X: 1, Y: 3}, data[1])
}
