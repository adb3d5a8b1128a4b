package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KIND_ONE_WAY    = "one_way"
	KIND_ROUND_TRIP = "round_trip"

	OUTCOME_FOUND      = "found"
	OUTCOME_INFEASIBLE = "infeasible"
	OUTCOME_REJECTED   = "rejected"
	OUTCOME_CACHED     = "cached"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waypointx_search_total",
		Help: "Total route searches by kind and outcome",
	}, []string{"kind", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "waypointx_search_duration_seconds",
		Help:    "Route search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10us to ~40s
	}, []string{"kind"})

	labelsPopped = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "waypointx_search_labels_popped",
		Help:    "Labels popped from the priority queue per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})

	staleLabels = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waypointx_search_stale_labels_total",
		Help: "Soft-deleted labels popped and skipped",
	})

	routeWaypoints = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "waypointx_route_waypoints",
		Help:    "Waypoints visited by found routes",
		Buckets: []float64{2, 3, 5, 10, 20, 50, 100, 200},
	}, []string{"kind"})
)

// SearchObservation is what a finished search reports.
type SearchObservation struct {
	Kind      string
	Outcome   string
	Elapsed   time.Duration
	Popped    int
	StalePops int
	Visited   int
}

func Observe(o SearchObservation) {
	searchTotal.WithLabelValues(o.Kind, o.Outcome).Inc()
	if o.Outcome == OUTCOME_REJECTED || o.Outcome == OUTCOME_CACHED {
		return
	}

	searchDuration.WithLabelValues(o.Kind).Observe(o.Elapsed.Seconds())
	labelsPopped.Observe(float64(o.Popped))
	staleLabels.Add(float64(o.StalePops))
	if o.Outcome == OUTCOME_FOUND {
		routeWaypoints.WithLabelValues(o.Kind).Observe(float64(o.Visited))
	}
}
