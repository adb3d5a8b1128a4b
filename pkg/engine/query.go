package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lintang-b-s/Waypointx/pkg"
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
	"github.com/lintang-b-s/Waypointx/pkg/engine/routing"
)

// OneWayQuery asks for a route from Start to End within MaxCost. MaxLength pins the number of
// waypoints unless it is pkg.NO_MAX_LENGTH.
type OneWayQuery struct {
	Start     da.Index
	End       da.Index
	MaxCost   float64
	MaxLength int
	Forbidden []da.Index
}

func (q OneWayQuery) options() []routing.Option {
	opts := make([]routing.Option, 0, 2)
	if q.MaxLength != pkg.NO_MAX_LENGTH {
		opts = append(opts, routing.WithMaxLength(q.MaxLength))
	}
	if len(q.Forbidden) > 0 {
		opts = append(opts, routing.WithForbidden(da.NewIndexSet(q.Forbidden...)))
	}
	return opts
}

func (q OneWayQuery) key() queryKey {
	return queryKey{
		start:     q.Start,
		end:       q.End,
		maxCost:   q.MaxCost,
		maxLength: q.MaxLength,
		forbidden: forbiddenKey(q.Forbidden),
	}
}

// RoundTripQuery asks for Start -> End -> Start within MaxCost, Ratio of it for the way out.
type RoundTripQuery struct {
	Start   da.Index
	End     da.Index
	MaxCost float64
	Ratio   float64
}

func (q RoundTripQuery) key() queryKey {
	return queryKey{
		start:   q.Start,
		end:     q.End,
		maxCost: q.MaxCost,
		ratio:   q.Ratio,
	}
}

type queryKey struct {
	start, end     da.Index
	maxCost, ratio float64
	maxLength      int
	forbidden      string
}

func forbiddenKey(forbidden []da.Index) string {
	if len(forbidden) == 0 {
		return ""
	}
	sorted := da.NewIndexSet(forbidden...).Sorted()
	var sb strings.Builder
	for i, id := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", id)
	}
	return sb.String()
}

type BatchResult[T any] struct {
	Result  T
	Err     error
	Elapsed time.Duration
}
