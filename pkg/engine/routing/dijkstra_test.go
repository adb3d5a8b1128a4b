package routing

import (
	"math"
	"testing"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (0,0),(1,1),(5,5),(10,10)
func diagonalMatrix(dir pkg.Direction) *da.DistanceMatrix {
	return da.NewDistanceMatrix([]da.Waypoint{
		da.NewWaypoint(0, 0),
		da.NewWaypoint(1, 1),
		da.NewWaypoint(5, 5),
		da.NewWaypoint(10, 10),
	}, dir)
}

// (0,0),(1,3),(2,0),(3,0): 1 is a detour, 2 lies on the straight line.
func zigzagMatrix(dir pkg.Direction) *da.DistanceMatrix {
	return da.NewDistanceMatrix([]da.Waypoint{
		da.NewWaypoint(0, 0),
		da.NewWaypoint(1, 3),
		da.NewWaypoint(2, 0),
		da.NewWaypoint(3, 0),
	}, dir)
}

func TestShortestPathCollinear(t *testing.T) {
	dm := diagonalMatrix(pkg.FORWARD)
	fullCost := dm.Distance(0, 1) + dm.Distance(1, 2) + dm.Distance(2, 3)

	res, err := NewLabelSettingSearch(dm).ShortestPath(0, 3, fullCost)
	require.NoError(t, err)
	assert.Equal(t, []da.Index{0, 1, 2, 3}, res.GetRoute())
	assert.Equal(t, fullCost, res.GetCost())
	assert.InDelta(t, 10*math.Sqrt2, res.GetCost(), 1e-9)

	// every route costs 10*sqrt(2) on a line
	res, err = NewLabelSettingSearch(dm).ShortestPath(0, 3, 9*math.Sqrt2)
	require.NoError(t, err)
	assert.False(t, res.IsFound())
	assert.Empty(t, res.GetRoute())
	assert.True(t, math.IsInf(res.GetCost(), 1))
}

func TestShortestPath(t *testing.T) {
	testCases := []struct {
		name       string
		start, end da.Index
		maxCost    float64
		opts       []Option
		wantRoute  []da.Index
		wantCost   float64
	}{
		{
			name:      "all waypoints fit",
			start:     0,
			end:       3,
			maxCost:   8,
			wantRoute: []da.Index{0, 1, 2, 3},
			wantCost:  2*math.Sqrt(10) + 1,
		},
		{
			name:      "detour dropped",
			start:     0,
			end:       3,
			maxCost:   5,
			wantRoute: []da.Index{0, 2, 3},
			wantCost:  3,
		},
		{
			name:      "exact direct budget",
			start:     0,
			end:       3,
			maxCost:   3,
			wantRoute: []da.Index{0, 2, 3},
			wantCost:  3,
		},
		{
			name:      "max length 2",
			start:     0,
			end:       3,
			maxCost:   8,
			opts:      []Option{WithMaxLength(2)},
			wantRoute: []da.Index{0, 3},
			wantCost:  3,
		},
		{
			name:      "max length 3",
			start:     0,
			end:       3,
			maxCost:   8,
			opts:      []Option{WithMaxLength(3)},
			wantRoute: []da.Index{0, 2, 3},
			wantCost:  3,
		},
		{
			name:      "forbidden",
			start:     0,
			end:       3,
			maxCost:   8,
			opts:      []Option{WithForbidden(da.NewIndexSet(2))},
			wantRoute: []da.Index{0, 1, 3},
			wantCost:  math.Sqrt(10) + math.Sqrt(13),
		},
		{
			name:      "backward leg",
			start:     3,
			end:       0,
			maxCost:   5,
			wantRoute: []da.Index{3, 2, 0},
			wantCost:  3,
		},
		{
			name:      "inner leg",
			start:     1,
			end:       3,
			maxCost:   10,
			wantRoute: []da.Index{1, 2, 3},
			wantCost:  math.Sqrt(10) + 1,
		},
		{
			name:      "trivial",
			start:     2,
			end:       2,
			maxCost:   0,
			wantRoute: []da.Index{2},
			wantCost:  0,
		},
	}

	dm := zigzagMatrix(pkg.BOTH)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewLabelSettingSearch(dm).ShortestPath(tt.start, tt.end, tt.maxCost, tt.opts...)
			require.NoError(t, err)
			require.True(t, res.IsFound())
			assert.Equal(t, tt.wantRoute, res.GetRoute())
			assert.InDelta(t, tt.wantCost, res.GetCost(), 1e-9)
			assert.Equal(t, len(tt.wantRoute), res.GetVisited())
			assert.LessOrEqual(t, res.GetCost(), tt.maxCost)
		})
	}
}

func TestShortestPathInfeasible(t *testing.T) {
	testCases := []struct {
		name       string
		dm         *da.DistanceMatrix
		start, end da.Index
		maxCost    float64
		opts       []Option
	}{
		{name: "budget below direct", dm: zigzagMatrix(pkg.BOTH), start: 0, end: 3, maxCost: 2.5},
		{name: "zero budget", dm: zigzagMatrix(pkg.BOTH), start: 0, end: 1, maxCost: 0},
		{
			name: "length too expensive", dm: zigzagMatrix(pkg.BOTH), start: 0, end: 3, maxCost: 5,
			opts: []Option{WithMaxLength(4)},
		},
		{
			name: "length longer than leg", dm: zigzagMatrix(pkg.BOTH), start: 0, end: 3, maxCost: 100,
			opts: []Option{WithMaxLength(5)},
		},
		{
			name: "trivial with length", dm: zigzagMatrix(pkg.BOTH), start: 1, end: 1, maxCost: 100,
			opts: []Option{WithMaxLength(2)},
		},
		{name: "against matrix direction", dm: zigzagMatrix(pkg.FORWARD), start: 3, end: 0, maxCost: 100},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewLabelSettingSearch(tt.dm).ShortestPath(tt.start, tt.end, tt.maxCost, tt.opts...)
			require.NoError(t, err)
			assert.False(t, res.IsFound())
			assert.Empty(t, res.GetRoute())
			assert.Equal(t, pkg.INF_COST, res.GetCost())
		})
	}
}

func TestShortestPathInvalidConfig(t *testing.T) {
	testCases := []struct {
		name       string
		start, end da.Index
		maxCost    float64
		opts       []Option
		wantErr    error
	}{
		{name: "start out of range", start: 4, end: 0, maxCost: 10, wantErr: ErrWaypointOutOfRange},
		{name: "end out of range", start: 0, end: 9, maxCost: 10, wantErr: ErrWaypointOutOfRange},
		{name: "negative budget", start: 0, end: 3, maxCost: -1, wantErr: ErrNegativeBudget},
		{name: "NaN budget", start: 0, end: 3, maxCost: math.NaN(), wantErr: ErrNegativeBudget},
		{
			name: "max length 1", start: 0, end: 3, maxCost: 10, opts: []Option{WithMaxLength(1)},
			wantErr: ErrMaxLengthTooSmall,
		},
		{
			name: "forbidden start", start: 0, end: 3, maxCost: 10,
			opts: []Option{WithForbidden(da.NewIndexSet(0))}, wantErr: ErrForbiddenEndpoint,
		},
		{
			name: "forbidden end", start: 0, end: 3, maxCost: 10,
			opts: []Option{WithForbidden(da.NewIndexSet(1, 3))}, wantErr: ErrForbiddenEndpoint,
		},
	}

	search := NewLabelSettingSearch(zigzagMatrix(pkg.BOTH))
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := search.ShortestPath(tt.start, tt.end, tt.maxCost, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestShortestPathInfiniteBudget(t *testing.T) {
	dm := zigzagMatrix(pkg.BOTH)
	res, err := NewLabelSettingSearch(dm).ShortestPath(0, 3, pkg.INF_COST)
	require.NoError(t, err)
	assert.Equal(t, []da.Index{0, 1, 2, 3}, res.GetRoute())
}

func TestShortestPathReusedSearch(t *testing.T) {
	dm := zigzagMatrix(pkg.BOTH)
	search := NewLabelSettingSearch(dm)

	first, err := search.ShortestPath(0, 3, 5)
	require.NoError(t, err)
	_, err = search.ShortestPath(0, 3, 8, WithForbidden(da.NewIndexSet(2)))
	require.NoError(t, err)
	again, err := search.ShortestPath(0, 3, 5)
	require.NoError(t, err)

	assert.Equal(t, first.GetRoute(), again.GetRoute())
	assert.Equal(t, first.GetCost(), again.GetCost())
	assert.Equal(t, first.GetStats(), again.GetStats())
}

func TestShortestPathStats(t *testing.T) {
	res, err := NewLabelSettingSearch(zigzagMatrix(pkg.BOTH)).ShortestPath(0, 3, 8)
	require.NoError(t, err)

	stats := res.GetStats()
	assert.Positive(t, stats.Popped)
	assert.LessOrEqual(t, stats.Popped, stats.Pushed)
	assert.LessOrEqual(t, stats.StalePops, stats.Superseded)
}

func TestForbiddenSetIsCopied(t *testing.T) {
	forbidden := da.NewIndexSet(2)
	opt := WithForbidden(forbidden)
	forbidden.Add(1)

	cfg := buildOptions([]Option{opt})
	assert.True(t, cfg.Forbidden.Contains(2))
	assert.False(t, cfg.Forbidden.Contains(1))
}

func TestReconstructRoute(t *testing.T) {
	target := da.NewSearchState(3, 3)
	testCases := []struct {
		name     string
		previous map[da.SearchState]da.SearchState
		want     []da.Index
		wantErr  error
	}{
		{
			name: "valid chain",
			previous: map[da.SearchState]da.SearchState{
				target:                  da.NewSearchState(2, 2),
				da.NewSearchState(2, 2): da.NewSearchState(0, 1),
			},
			want: []da.Index{0, 2, 3},
		},
		{
			name:     "missing predecessor",
			previous: map[da.SearchState]da.SearchState{},
			wantErr:  ErrInvariantViolation,
		},
		{
			name:     "self cycle",
			previous: map[da.SearchState]da.SearchState{target: target},
			wantErr:  ErrInvariantViolation,
		},
		{
			name:     "chain shorter than visited count",
			previous: map[da.SearchState]da.SearchState{target: da.NewSearchState(0, 1)},
			wantErr:  ErrInvariantViolation,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			ls := NewLabelSettingSearch(zigzagMatrix(pkg.FORWARD))
			ls.start, ls.end = 0, 3
			ls.clearState()
			for state, prev := range tt.previous {
				ls.previous[state] = prev
			}

			route, err := ls.reconstructRoute(target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, route)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, route)
		})
	}
}

func TestGetRouteReturnsCopy(t *testing.T) {
	res, err := NewLabelSettingSearch(zigzagMatrix(pkg.BOTH)).ShortestPath(0, 3, 5)
	require.NoError(t, err)

	route := res.GetRoute()
	require.Equal(t, []da.Index{0, 2, 3}, route)
	route[1] = 1

	assert.Equal(t, []da.Index{0, 2, 3}, res.GetRoute())
	assert.Equal(t, 3, res.GetVisited())
}
