package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/usecase/recommendation"
)

// BackgroundTasks owns the long-running drivers started from main. The
// weekly generation pass is the only one today.
type BackgroundTasks struct {
	RecommendationUsecase recommendation.RecommendationUsecase
	Hour                  int

	now func() time.Time
}

func NewBackgroundTasks(recUC recommendation.RecommendationUsecase, hour int) *BackgroundTasks {
	return &BackgroundTasks{
		RecommendationUsecase: recUC,
		Hour:                  hour,
		now:                   time.Now,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startScheduledGeneration(ctx)
}

// startScheduledGeneration wakes once an hour and triggers a pass at the
// configured hour. The usecase itself gates on the enable flag and the day
// of week, so off-day ticks come back as cheap skips.
func (bt *BackgroundTasks) startScheduledGeneration(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if bt.now().Hour() != bt.Hour {
				continue
			}
			summary := bt.RecommendationUsecase.RunScheduledGeneration(ctx, false)
			if summary.Skipped != "" {
				continue
			}
			slog.Info("weekly generation pass finished",
				"total_brands", summary.TotalBrands,
				"processed", summary.BrandsProcessed,
				"failed", summary.BrandsFailed)
		}
	}
}
