// Package metrics holds the Prometheus instruments of the poll backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ServiceMetrics instruments the business-rule layer.
type ServiceMetrics struct {
	PollsCreated  prometheus.Counter
	VotesRecorded *prometheus.CounterVec
	VotesRejected *prometheus.CounterVec
	VoteDuration  prometheus.Histogram
}

// NewServiceMetrics registers all service instruments with the given
// registerer. Tests pass a fresh registry so instruments can be created more
// than once per process.
func NewServiceMetrics(reg prometheus.Registerer) *ServiceMetrics {
	factory := promauto.With(reg)
	return &ServiceMetrics{
		PollsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pollbase",
			Name:      "polls_created_total",
			Help:      "Total number of polls created",
		}),
		VotesRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollbase",
			Name:      "votes_recorded_total",
			Help:      "Total number of votes recorded",
		}, []string{"poll_id"}),
		VotesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollbase",
			Name:      "votes_rejected_total",
			Help:      "Total number of votes rejected, by reason",
		}, []string{"reason"}),
		VoteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pollbase",
			Name:      "vote_duration_seconds",
			Help:      "Histogram of vote handling times",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
