// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for EmotionAnalyses.
const (
	OutcomeScored       = "scored"
	OutcomeInvalidInput = "invalid_input"
	OutcomeDataFormat   = "data_format_error"
	OutcomeUnavailable  = "unavailable"
)

var (
	EmotionAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_analyses_total",
			Help: "Total number of emotion analyses by outcome",
		},
		[]string{"outcome"},
	)

	EmotionAnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emotion_analysis_duration_seconds",
			Help:    "Duration of calls to the emotion classification service in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	DominantEmotions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_dominant_total",
			Help: "Total number of analyses per dominant emotion",
		},
		[]string{"emotion"},
	)
)
