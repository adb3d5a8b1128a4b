package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
)

var (
	ErrMissingCount     = errors.New("parser: missing waypoint count")
	ErrMalformedCount   = errors.New("parser: malformed waypoint count")
	ErrMalformedLine    = errors.New("parser: malformed waypoint line")
	ErrNonFinite        = errors.New("parser: waypoint coordinate is not finite")
	ErrCountMismatch    = errors.New("parser: waypoint count does not match the number of waypoints")
	ErrNoNodes          = errors.New("parser: no matching nodes in OpenStreetMap extract")
)

const (
	BZIP2_EXT   = ".bz2"
	OSM_XML_EXT = ".osm"
	OSM_PBF_EXT = ".pbf"
)

// ReadWaypoints parses the text format: the number of waypoints on the first line, then one
// "x y" pair per line. Blank lines are skipped. The result is sorted, so indices follow (x, y) order.
func ReadWaypoints(r io.Reader) ([]da.Waypoint, error) {
	sc := bufio.NewScanner(r)

	lineNo := 0
	expected := -1
	var waypoints []da.Waypoint
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if expected < 0 {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCount, lineNo, line)
			}
			expected = n
			waypoints = make([]da.Waypoint, 0, n)
			continue
		}

		w, err := parseWaypoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		waypoints = append(waypoints, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if expected < 0 {
		return nil, ErrMissingCount
	}
	if len(waypoints) != expected {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrCountMismatch, expected, len(waypoints))
	}

	da.SortWaypoints(waypoints)
	return waypoints, nil
}

func parseWaypoint(line string) (da.Waypoint, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return da.Waypoint{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	x, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return da.Waypoint{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	y, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return da.Waypoint{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	w := da.NewWaypoint(x, y)
	if !w.IsFinite() {
		return da.Waypoint{}, fmt.Errorf("%w: %q", ErrNonFinite, line)
	}
	return w, nil
}

// WriteWaypoints writes waypoints in the format ReadWaypoints reads.
func WriteWaypoints(w io.Writer, waypoints []da.Waypoint) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(waypoints))
	for _, wp := range waypoints {
		fmt.Fprintf(bw, "%s %s\n", strconv.FormatFloat(wp.GetX(), 'g', -1, 64),
			strconv.FormatFloat(wp.GetY(), 'g', -1, 64))
	}
	return bw.Flush()
}

// LoadWaypoints reads a waypoint file, chosen by extension: ".osm" XML and ".pbf" OpenStreetMap
// extracts take every node, anything else is the text format. A trailing ".bz2" is decompressed.
func LoadWaypoints(path string) ([]da.Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	if strings.HasSuffix(name, BZIP2_EXT) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
		name = strings.TrimSuffix(name, BZIP2_EXT)
	}

	switch {
	case strings.HasSuffix(name, OSM_PBF_EXT):
		return ReadWaypointsOSMPBF(r, AllNodes)
	case strings.HasSuffix(name, OSM_XML_EXT):
		return ReadWaypointsOSMXML(r, AllNodes)
	default:
		return ReadWaypoints(r)
	}
}

// SaveWaypoints writes the text format to path, bzip2 compressed if path ends in ".bz2".
func SaveWaypoints(path string, waypoints []da.Waypoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(path, BZIP2_EXT) {
		return WriteWaypoints(f, waypoints)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteWaypoints(bz, waypoints); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
