// Package metrics provides Prometheus metrics for monitoring the
// settlement pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	pipelineRuns        *prometheus.CounterVec
	settlements         *prometheus.CounterVec
	treasuryReads       *prometheus.CounterVec
	observationDuration prometheus.Histogram
	requestDuration     *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		pipelineRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlementd_pipeline_runs_total",
				Help: "Settlement pipeline runs by outcome",
			},
			[]string{"outcome"},
		),
		settlements: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlementd_settlements_total",
				Help: "On-chain settlement executions by outcome",
			},
			[]string{"outcome"},
		),
		treasuryReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlementd_treasury_reads_total",
				Help: "Treasury balance reads by source",
			},
			[]string{"source"},
		),
		observationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlementd_task_observation_seconds",
				Help:    "Time spent waiting for task completion",
				Buckets: prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlementd_http_request_seconds",
				Help:    "HTTP request duration by route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}
}

// RecordPipelineRun counts one pipeline run with its outcome label.
func (m *Metrics) RecordPipelineRun(outcome string) {
	m.pipelineRuns.WithLabelValues(outcome).Inc()
}

// RecordSettlement counts one settlement execution with its outcome label.
func (m *Metrics) RecordSettlement(outcome string) {
	m.settlements.WithLabelValues(outcome).Inc()
}

// RecordTreasuryRead counts one treasury read with its source label.
func (m *Metrics) RecordTreasuryRead(source string) {
	m.treasuryReads.WithLabelValues(source).Inc()
}

// ObserveTaskWait records how long a task observation blocked.
func (m *Metrics) ObserveTaskWait(d time.Duration) {
	m.observationDuration.Observe(d.Seconds())
}

// ObserveRequest records one HTTP request duration.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(route, status).Observe(d.Seconds())
}
