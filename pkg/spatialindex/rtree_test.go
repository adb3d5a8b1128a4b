package spatialindex

import (
	"testing"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestRtree(t *testing.T, initialRadius float64) *Rtree {
	t.Helper()
	rt := NewRtree(initialRadius)
	rt.Build([]da.Waypoint{
		da.NewWaypoint(0, 0),
		da.NewWaypoint(1, 3),
		da.NewWaypoint(2, 0),
		da.NewWaypoint(3, 0),
		da.NewWaypoint(40, 40),
	}, zap.NewNop())
	require.Equal(t, 5, rt.Len())
	return rt
}

func TestNearest(t *testing.T) {
	testCases := []struct {
		name      string
		x, y      float64
		maxRadius float64
		wantID    da.Index
		wantErr   error
	}{
		{name: "exact hit", x: 2, y: 0, wantID: 2},
		{name: "close to detour", x: 1.2, y: 2.5, wantID: 1},
		{name: "far away", x: 35, y: 38, wantID: 4},
		{name: "outside the box", x: -100, y: -100, wantID: 0},
		{name: "tie goes to lower id", x: 1, y: 0, wantID: 0},
		{name: "within max radius", x: 3.4, y: 0, maxRadius: 0.5, wantID: 3},
		{name: "beyond max radius", x: 20, y: 20, maxRadius: 5, wantErr: ErrNoWaypointNearby},
	}

	for _, initialRadius := range []float64{0.1, 1, 100} {
		rt := buildTestRtree(t, initialRadius)
		for _, tt := range testCases {
			t.Run(tt.name, func(t *testing.T) {
				got, err := rt.Nearest(tt.x, tt.y, tt.maxRadius)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.GetID())
			})
		}
	}
}

func TestNearestCornerCase(t *testing.T) {
	// (1.9,1.9) is inside the first box, (0,2.6) is outside it but closer
	rt := NewRtree(2)
	rt.Build([]da.Waypoint{
		da.NewWaypoint(1.9, 1.9),
		da.NewWaypoint(0, 2.6),
	}, zap.NewNop())

	got, err := rt.Nearest(0, 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, da.Index(1), got.GetID())
}

func TestNearestEmpty(t *testing.T) {
	rt := NewRtree(1)
	rt.Build(nil, zap.NewNop())
	_, err := rt.Nearest(0, 0, 0)
	assert.ErrorIs(t, err, ErrNoWaypointNearby)
}

func TestSearchWithinRadius(t *testing.T) {
	rt := buildTestRtree(t, 1)
	got := rt.SearchWithinRadius(1, 0, 1)
	ids := make([]da.Index, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.GetID())
	}
	assert.ElementsMatch(t, []da.Index{0, 2}, ids)
}
