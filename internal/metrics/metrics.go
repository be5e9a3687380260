// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Analysis metrics
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoptly_analyses_total",
			Help: "Total number of customer intelligence analyses",
		},
		[]string{"risk_level"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adoptly_analysis_duration_seconds",
			Help:    "Analysis duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Question metrics
	QuestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoptly_questions_total",
			Help: "Total number of questions answered",
		},
		[]string{"domain_intent", "shape"},
	)

	QuestionsRefused = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adoptly_questions_refused_total",
			Help: "Total number of questions refused for insufficient evidence",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoptly_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)
