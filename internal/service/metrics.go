package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ExportRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_export_runs_total",
			Help: "Runs of the task export command by outcome",
		},
		[]string{"outcome"},
	)
	ExportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "task_export_duration_seconds",
			Help:    "Wall time of the task export command",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)
)

func init() {
	prometheus.MustRegister(ExportRuns)
	prometheus.MustRegister(ExportDuration)
}
