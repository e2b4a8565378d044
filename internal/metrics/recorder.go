// Package metrics exports search statistics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"go-astar-visualizer/pkg/gridmap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "astar"

// Recorder implements gridmap.Recorder.
type Recorder struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

var _ gridmap.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by outcome.",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expanded_nodes",
			Help:      "Cells expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Edges in found paths.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a search including observer callbacks.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.searches, r.expanded, r.pathLength, r.duration)
	return r
}

// ObserveRun records one finished search.
func (r *Recorder) ObserveRun(outcome gridmap.Outcome, expanded, pathLength int, elapsed time.Duration) {
	r.searches.WithLabelValues(outcome.String()).Inc()
	r.expanded.Observe(float64(expanded))
	r.duration.Observe(elapsed.Seconds())
	if outcome == gridmap.PathFound {
		r.pathLength.Observe(float64(pathLength))
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
