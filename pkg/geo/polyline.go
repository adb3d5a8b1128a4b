package geo

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromWaypoints encodes the route in Google polyline format, y as the first coordinate
// and x as the second, so (lat, lon) extracts round trip unchanged.
func PolylineFromWaypoints(waypoints []da.Waypoint, route []da.Index) string {
	coords := make([][]float64, 0, len(route))
	for _, id := range route {
		w := waypoints[id]
		coords = append(coords, []float64{w.GetY(), w.GetX()})
	}
	return string(polyline.EncodeCoords(coords))
}

// WaypointsFromPolyline decodes a polyline produced by PolylineFromWaypoints.
func WaypointsFromPolyline(encoded string) ([]da.Waypoint, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	waypoints := make([]da.Waypoint, 0, len(coords))
	for _, c := range coords {
		waypoints = append(waypoints, da.NewWaypoint(c[1], c[0]))
	}
	return waypoints, nil
}
