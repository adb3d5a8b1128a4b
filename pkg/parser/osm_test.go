package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="-6.2088" lon="106.8456" version="1">
    <tag k="amenity" v="fuel"/>
  </node>
  <node id="2" lat="-6.1754" lon="106.8272" version="1"/>
  <node id="3" lat="-6.2297" lon="106.8650" version="1">
    <tag k="amenity" v="cafe"/>
  </node>
  <way id="10" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>
`

func TestReadWaypointsOSMXML(t *testing.T) {
	testCases := []struct {
		name   string
		accept NodeFilter
		want   []da.Waypoint
	}{
		{
			name:   "all nodes",
			accept: AllNodes,
			want: []da.Waypoint{
				da.NewWaypoint(106.8272, -6.1754),
				da.NewWaypoint(106.8456, -6.2088),
				da.NewWaypoint(106.8650, -6.2297),
			},
		},
		{
			name:   "tag value",
			accept: WithTag("amenity", "fuel"),
			want:   []da.Waypoint{da.NewWaypoint(106.8456, -6.2088)},
		},
		{
			name:   "tag key",
			accept: WithTag("amenity", ""),
			want:   []da.Waypoint{da.NewWaypoint(106.8456, -6.2088), da.NewWaypoint(106.8650, -6.2297)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWaypointsOSMXML(strings.NewReader(testOSM), tt.accept)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadWaypointsOSMXMLNoMatch(t *testing.T) {
	_, err := ReadWaypointsOSMXML(strings.NewReader(testOSM), WithTag("shop", ""))
	assert.ErrorIs(t, err, ErrNoNodes)
}

func TestLoadWaypointsOSMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extract.osm")
	require.NoError(t, os.WriteFile(path, []byte(testOSM), 0o644))

	got, err := LoadWaypoints(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.True(t, da.IsSorted(got))
}
