package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RecommendationMetrics groups the engine's operational metrics.
type RecommendationMetrics struct {
	GenerationRunsTotal             prometheus.CounterVec
	RecommendationsGeneratedTotal   prometheus.CounterVec
	RecommendationsSkippedTotal     prometheus.CounterVec
	GenerationErrorsTotal           prometheus.CounterVec
	GenerationDuration              prometheus.HistogramVec
	ActionsTotal                    prometheus.CounterVec
	ScheduledRunsTotal              prometheus.CounterVec
	ScheduledBrandsProcessedTotal   prometheus.Counter
	ScheduledBrandsFailedTotal      prometheus.Counter
}

func NewRecommendationMetrics() *RecommendationMetrics {
	return &RecommendationMetrics{
		GenerationRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_generation_runs_total",
				Help: "Generation runs per brand and outcome",
			},
			[]string{"brand_id", "outcome"},
		),

		RecommendationsGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendations_generated_total",
				Help: "Recommendations persisted, by type and confidence",
			},
			[]string{"brand_id", "type", "confidence"},
		),

		RecommendationsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendations_skipped_total",
				Help: "Candidates skipped because a PENDING duplicate exists",
			},
			[]string{"brand_id", "type"},
		),

		GenerationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_generation_errors_total",
				Help: "Per-candidate and fatal errors during generation",
			},
			[]string{"brand_id"},
		),

		GenerationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recommendation_generation_duration_seconds",
				Help:    "Duration of one brand generation run",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"brand_id"},
		),

		ActionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_actions_total",
				Help: "User decisions applied to recommendations",
			},
			[]string{"action"},
		),

		ScheduledRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_scheduled_runs_total",
				Help: "Scheduled generation passes by outcome",
			},
			[]string{"outcome"},
		),

		ScheduledBrandsProcessedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recommendation_scheduled_brands_processed_total",
				Help: "Brands processed by scheduled runs",
			},
		),

		ScheduledBrandsFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recommendation_scheduled_brands_failed_total",
				Help: "Brands failed during scheduled runs",
			},
		),
	}
}

func (m *RecommendationMetrics) RecordGenerationRun(brandID, outcome string, errorCount int, durationSeconds float64) {
	m.GenerationRunsTotal.WithLabelValues(brandID, outcome).Inc()
	if errorCount > 0 {
		m.GenerationErrorsTotal.WithLabelValues(brandID).Add(float64(errorCount))
	}
	m.GenerationDuration.WithLabelValues(brandID).Observe(durationSeconds)
}

func (m *RecommendationMetrics) RecordRecommendationGenerated(brandID, recType, confidence string) {
	m.RecommendationsGeneratedTotal.WithLabelValues(brandID, recType, confidence).Inc()
}

func (m *RecommendationMetrics) RecordRecommendationSkipped(brandID, recType string) {
	m.RecommendationsSkippedTotal.WithLabelValues(brandID, recType).Inc()
}

func (m *RecommendationMetrics) RecordAction(action string) {
	m.ActionsTotal.WithLabelValues(action).Inc()
}

func (m *RecommendationMetrics) RecordScheduledRun(outcome string, processed, failed int) {
	m.ScheduledRunsTotal.WithLabelValues(outcome).Inc()
	m.ScheduledBrandsProcessedTotal.Add(float64(processed))
	m.ScheduledBrandsFailedTotal.Add(float64(failed))
}
