package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	SkipDisabled = "disabled"
	SkipWrongDay = "wrong_day"
)

type BrandRunResult struct {
	BrandID   string `json:"brand_id"`
	BrandName string `json:"brand_name"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
}

// ScheduledRunResult summarizes one pass over all active brands. The
// scheduler never fails as a whole: brand failures are recorded per brand
// and the summary always comes back.
type ScheduledRunResult struct {
	TotalBrands     int              `json:"total_brands"`
	BrandsProcessed int              `json:"brands_processed"`
	BrandsFailed    int              `json:"brands_failed"`
	Results         []BrandRunResult `json:"results"`
	Skipped         string           `json:"skipped,omitempty"`
	Error           string           `json:"error,omitempty"`
	Duration        time.Duration    `json:"duration"`
}

// RunScheduledGeneration drives generation for every active brand, pausing
// the configured stagger delay between brands to avoid bursting the data
// store. force bypasses the enable flag and the day-of-week gate.
func (uc *DefaultRecommendationUsecase) RunScheduledGeneration(ctx context.Context, force bool) *ScheduledRunResult {
	start := uc.now()
	summary := &ScheduledRunResult{Results: []BrandRunResult{}}

	if !force {
		if !uc.scheduler.Enabled {
			summary.Skipped = SkipDisabled
			summary.Duration = time.Since(start)
			uc.recordScheduledRun(summary)
			return summary
		}
		if start.Weekday() != uc.scheduler.DayOfWeek {
			summary.Skipped = SkipWrongDay
			summary.Duration = time.Since(start)
			uc.recordScheduledRun(summary)
			return summary
		}
	}

	brands, err := uc.brandRepo.GetActiveBrands()
	if err != nil {
		summary.Error = fmt.Sprintf("failed to load active brands: %v", err)
		summary.Duration = time.Since(start)
		slog.Error("scheduled generation aborted", "error", err.Error())
		uc.recordScheduledRun(summary)
		return summary
	}
	summary.TotalBrands = len(brands)

	for i, brand := range brands {
		if i > 0 && uc.scheduler.Stagger > 0 {
			select {
			case <-ctx.Done():
				summary.Error = fmt.Sprintf("run interrupted: %v", ctx.Err())
				summary.Duration = time.Since(start)
				uc.recordScheduledRun(summary)
				return summary
			case <-time.After(uc.scheduler.Stagger):
			}
		}

		res := uc.GenerateRecommendations(ctx, GenerateOptions{
			BrandID:      brand.ID,
			LookbackDays: uc.scheduler.LookbackDays,
		})

		brandResult := BrandRunResult{
			BrandID:   brand.ID,
			BrandName: brand.Name,
			Generated: res.Generated,
			Skipped:   res.Skipped,
		}
		// A run that produced nothing but errors is the fatal short-circuit
		// shape; anything else counts as processed.
		if len(res.Errors) > 0 && res.Generated == 0 && res.Skipped == 0 {
			brandResult.Error = res.Errors[0]
			summary.BrandsFailed++
			slog.Error("brand generation failed", "brand_id", brand.ID, "error", brandResult.Error)
		} else {
			summary.BrandsProcessed++
		}
		summary.Results = append(summary.Results, brandResult)
	}

	summary.Duration = time.Since(start)
	slog.Info("scheduled generation finished",
		"total_brands", summary.TotalBrands,
		"processed", summary.BrandsProcessed,
		"failed", summary.BrandsFailed,
		"duration", summary.Duration)
	uc.recordScheduledRun(summary)
	return summary
}

func (uc *DefaultRecommendationUsecase) recordScheduledRun(summary *ScheduledRunResult) {
	if uc.Metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case summary.Skipped != "":
		outcome = summary.Skipped
	case summary.Error != "":
		outcome = "failed"
	}
	uc.Metrics.RecordScheduledRun(outcome, summary.BrandsProcessed, summary.BrandsFailed)
}
