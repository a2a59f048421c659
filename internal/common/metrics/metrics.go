// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_analyses_total",
			Help: "Total number of resume analyses by fit category",
		},
		[]string{"fit_category"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "scanner_analysis_duration_seconds",
			Help: "Duration of analysis stages in seconds",
		},
		[]string{"stage"},
	)

	ExtractionFieldFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_extraction_field_failures_total",
			Help: "Total number of sub-extractor failures by field",
		},
		[]string{"field"},
	)

	ScoringFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scanner_scoring_failures_total",
			Help: "Total number of catastrophic scoring failures",
		},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_cache_requests_total",
			Help: "Total number of score cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
