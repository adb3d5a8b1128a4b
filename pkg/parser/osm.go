package parser

import (
	"context"
	"io"

	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// NodeFilter selects the OpenStreetMap nodes that become waypoints.
type NodeFilter func(n *osm.Node) bool

func AllNodes(*osm.Node) bool {
	return true
}

// WithTag keeps nodes tagged key=value, any value if value is empty.
func WithTag(key, value string) NodeFilter {
	return func(n *osm.Node) bool {
		if !n.Tags.HasTag(key) {
			return false
		}
		return value == "" || n.Tags.Find(key) == value
	}
}

type osmScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// ReadWaypointsOSMXML takes a waypoint at (lon, lat) for every accepted node, sorted.
func ReadWaypointsOSMXML(r io.Reader, accept NodeFilter) ([]da.Waypoint, error) {
	scanner := osmxml.New(context.Background(), r)
	defer scanner.Close()
	return scanNodes(scanner, accept)
}

// ReadWaypointsOSMPBF is ReadWaypointsOSMXML for PBF extracts.
func ReadWaypointsOSMPBF(r io.Reader, accept NodeFilter) ([]da.Waypoint, error) {
	scanner := osmpbf.New(context.Background(), r, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()
	return scanNodes(scanner, accept)
}

func scanNodes(scanner osmScanner, accept NodeFilter) ([]da.Waypoint, error) {
	waypoints := make([]da.Waypoint, 0, 64)
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if !accept(node) {
			continue
		}
		waypoints = append(waypoints, da.NewWaypoint(node.Lon, node.Lat))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(waypoints) == 0 {
		return nil, ErrNoNodes
	}

	da.SortWaypoints(waypoints)
	return waypoints, nil
}
