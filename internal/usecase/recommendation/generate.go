package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	publisher "github.com/adforge/adforge-recommendation-service/internal/infrastructure/kafka"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/analyzer"
)

const DefaultLookbackDays = 30

type GenerateOptions struct {
	BrandID      string
	LookbackDays int
	DryRun       bool
}

// GenerateResult is the structured outcome of one brand's generation run.
// A run with zero candidates and zero errors is a success, not a failure.
type GenerateResult struct {
	Generated       int                      `json:"generated"`
	Skipped         int                      `json:"skipped"`
	Errors          []string                 `json:"errors"`
	Recommendations []*domain.Recommendation `json:"recommendations"`
}

// GenerateRecommendations runs every finder for one brand, builds a
// recommendation per qualifying candidate and persists the ones without a
// PENDING duplicate. All failure modes fold into the result; only the brand
// lookup and aggregation short-circuit the run.
func (uc *DefaultRecommendationUsecase) GenerateRecommendations(ctx context.Context, opts GenerateOptions) *GenerateResult {
	start := time.Now()
	res := &GenerateResult{Errors: []string{}}
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = uc.scheduler.LookbackDays
	}
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = DefaultLookbackDays
	}

	brand, err := uc.brandRepo.GetBrandByID(opts.BrandID)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("brand lookup failed: %v", err))
		uc.recordGenerationOutcome(opts.BrandID, res, start)
		return res
	}

	thresholds := domain.DefaultThresholds()
	overrides, err := uc.settingsRepo.GetThresholdOverrides(brand.CompanyID)
	if err != nil {
		slog.Warn("failed to load threshold overrides, using defaults",
			"brand_id", brand.ID, "company_id", brand.CompanyID, "error", err.Error())
	} else {
		thresholds = thresholds.Merge(overrides)
	}

	snap, err := uc.aggregator.Snapshot(opts.BrandID, opts.LookbackDays)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("metric aggregation failed: %v", err))
		uc.recordGenerationOutcome(opts.BrandID, res, start)
		return res
	}

	var candidates []analyzer.Candidate
	for _, finder := range uc.finders {
		found := finder.Find(snap, thresholds)
		slog.Info("finder completed",
			"brand_id", brand.ID, "finder", finder.Name(), "candidates", len(found))
		candidates = append(candidates, found...)
	}

	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("generation interrupted: %v", err))
			break
		}
		rec, err := uc.buildRecommendation(brand.ID, cand)
		if err != nil {
			// Per-candidate boundary: record and keep going.
			res.Errors = append(res.Errors, fmt.Sprintf("%s %q: %v", cand.Type, cand.Keyword, err))
			continue
		}
		if opts.DryRun {
			res.Generated++
			res.Recommendations = append(res.Recommendations, rec)
			continue
		}
		saved, duplicate := uc.persistRecommendation(rec)
		switch {
		case saved:
			res.Generated++
			res.Recommendations = append(res.Recommendations, rec)
			if uc.Metrics != nil {
				uc.Metrics.RecordRecommendationGenerated(brand.ID, string(rec.Type), string(rec.Confidence))
			}
		case duplicate:
			res.Skipped++
			if uc.Metrics != nil {
				uc.Metrics.RecordRecommendationSkipped(brand.ID, string(rec.Type))
			}
		}
	}

	if !opts.DryRun && uc.kafkaPublisher != nil && (res.Generated > 0 || res.Skipped > 0) {
		go func(event publisher.GenerationEvent) {
			if err := uc.kafkaPublisher.PublishGeneration(event); err != nil {
				slog.Error("failed to publish generation event", "brand_id", event.BrandID, "error", err.Error())
			}
		}(publisher.GenerationEvent{
			BrandID:      brand.ID,
			Generated:    res.Generated,
			Skipped:      res.Skipped,
			Errors:       len(res.Errors),
			LookbackDays: opts.LookbackDays,
			GeneratedAt:  uc.now(),
		})
	}

	uc.recordGenerationOutcome(brand.ID, res, start)
	slog.Info("generation run finished",
		"brand_id", brand.ID,
		"generated", res.Generated,
		"skipped", res.Skipped,
		"errors", len(res.Errors),
		"dry_run", opts.DryRun)
	return res
}

func (uc *DefaultRecommendationUsecase) recordGenerationOutcome(brandID string, res *GenerateResult, start time.Time) {
	if uc.Metrics == nil {
		return
	}
	outcome := "ok"
	if len(res.Errors) > 0 && res.Generated == 0 && res.Skipped == 0 {
		outcome = "failed"
	}
	uc.Metrics.RecordGenerationRun(brandID, outcome, len(res.Errors), time.Since(start).Seconds())
}
