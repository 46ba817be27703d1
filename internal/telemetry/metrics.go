package telemetry

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcomes reported by RecordSearch.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeLimit      = "limit"
	OutcomeError      = "error"
)

// Registry collects every statespace metric.
var Registry = prometheus.NewRegistry()

var (
	searchTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "statespace_search_total",
		Help: "Graph searches run, by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	nodesExpanded = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "statespace_nodes_expanded",
		Help:    "Nodes expanded per search.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"strategy"})

	solutionLength = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "statespace_solution_length",
		Help:    "Number of actions in returned solutions.",
		Buckets: prometheus.LinearBuckets(0, 2, 16),
	}, []string{"strategy"})

	reachTotal = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "statespace_reach_builds_total",
		Help: "Reachability graphs built.",
	})

	reachStates = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Name:    "statespace_reach_states",
		Help:    "States per reachability graph.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)

// RecordSearch counts one finished search. length is ignored unless outcome is OutcomeSolved.
func RecordSearch(strategy, outcome string, expanded, length int) {
	searchTotal.WithLabelValues(strategy, outcome).Inc()
	nodesExpanded.WithLabelValues(strategy).Observe(float64(expanded))
	if outcome == OutcomeSolved {
		solutionLength.WithLabelValues(strategy).Observe(float64(length))
	}
}

// RecordReach counts one finished reachability build.
func RecordReach(states int) {
	reachTotal.Inc()
	reachStates.Observe(float64(states))
}

// WriteMetrics dumps Registry in the Prometheus text exposition format.
func WriteMetrics(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
