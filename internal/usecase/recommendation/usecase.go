package recommendation

import (
	"context"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	publisher "github.com/adforge/adforge-recommendation-service/internal/infrastructure/kafka"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/metrics"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/analyzer"
)

type RecommendationUsecase interface {
	GenerateRecommendations(ctx context.Context, opts GenerateOptions) *GenerateResult
	ActionRecommendation(input ActionInput) (*ActionResult, error)
	GetRecommendationsForBrand(brandID string, filter domain.GetRecommendationsFilter) (*RecommendationsPage, error)
	GetRecommendationSummary(brandID string) (*domain.RecommendationSummary, error)
	RunScheduledGeneration(ctx context.Context, force bool) *ScheduledRunResult
}

// SchedulerSettings are the deployment knobs for the weekly driver.
type SchedulerSettings struct {
	Enabled      bool
	DayOfWeek    time.Weekday
	Hour         int
	Stagger      time.Duration
	LookbackDays int
}

type DefaultRecommendationUsecase struct {
	recRepo      domain.RecommendationRepository
	brandRepo    domain.BrandRepository
	settingsRepo domain.SettingsRepository
	aggregator   *analyzer.MetricAggregator
	finders      []analyzer.Finder
	kafkaPublisher *publisher.RecommendationPublisher
	Metrics      *metrics.RecommendationMetrics
	scheduler    SchedulerSettings

	// now is swapped in tests to pin the scheduler day gate and snooze math.
	now func() time.Time
}

func NewDefaultRecommendationUsecase(
	recRepo domain.RecommendationRepository,
	brandRepo domain.BrandRepository,
	settingsRepo domain.SettingsRepository,
	aggregator *analyzer.MetricAggregator,
	kafkaPublisher *publisher.RecommendationPublisher,
	recMetrics *metrics.RecommendationMetrics,
	scheduler SchedulerSettings,
) *DefaultRecommendationUsecase {
	return &DefaultRecommendationUsecase{
		recRepo:        recRepo,
		brandRepo:      brandRepo,
		settingsRepo:   settingsRepo,
		aggregator:     aggregator,
		finders:        analyzer.DefaultFinders(),
		kafkaPublisher: kafkaPublisher,
		Metrics:        recMetrics,
		scheduler:      scheduler,
		now:            time.Now,
	}
}
