package recommendation

import (
	"log/slog"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	publisher "github.com/adforge/adforge-recommendation-service/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// DefaultSnoozeDays applies when a snooze action names no explicit duration.
const DefaultSnoozeDays = 7

type ActionInput struct {
	RecommendationID string
	BrandID          string
	Action           domain.RecommendationAction
	Reason           string
	Notes            string
	UserID           string
	SnoozeDays       int
}

type ActionResult struct {
	Recommendation *domain.Recommendation `json:"recommendation"`
	ChangeLog      *domain.ChangeLogEntry `json:"change_log"`
}

// ActionRecommendation applies a user decision to a recommendation. Legal
// from PENDING, or from SNOOZED once the snooze has expired; anything else
// is ErrAlreadyActioned. The status update and its change log entry are
// written in one transaction.
func (uc *DefaultRecommendationUsecase) ActionRecommendation(input ActionInput) (*ActionResult, error) {
	switch input.Action {
	case domain.ActionAccept, domain.ActionReject, domain.ActionSnooze:
	default:
		return nil, domain.ErrInvalidAction
	}

	rec, err := uc.recRepo.GetRecommendationByID(input.RecommendationID)
	if err != nil {
		return nil, err
	}
	// Tenant isolation: a foreign brand's recommendation does not exist as
	// far as the caller is concerned.
	if rec.BrandID != input.BrandID {
		return nil, domain.ErrRecommendationNotFound
	}

	now := uc.now()
	if !actionable(rec, now) {
		return nil, domain.ErrAlreadyActioned
	}

	before := domain.StatusSnapshot{Status: rec.Status, SnoozedUntil: rec.SnoozedUntil}

	rec.Status = domain.RecommendationStatus(input.Action)
	rec.SnoozedUntil = nil
	if input.Action == domain.ActionSnooze {
		until := now.AddDate(0, 0, snoozeDays(input.SnoozeDays))
		rec.SnoozedUntil = &until
	}
	rec.UpdatedAt = now

	entry := &domain.ChangeLogEntry{
		ID:               uuid.New().String(),
		RecommendationID: rec.ID,
		Action:           input.Action,
		Reason:           input.Reason,
		Notes:            input.Notes,
		Before:           before,
		After:            domain.StatusSnapshot{Status: rec.Status, SnoozedUntil: rec.SnoozedUntil},
		UserID:           input.UserID,
		CreatedAt:        now,
	}

	if err := uc.recRepo.ApplyAction(rec, entry); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAction(string(input.Action))
	}
	if uc.kafkaPublisher != nil {
		go func(event publisher.ActionEvent) {
			if err := uc.kafkaPublisher.PublishAction(event); err != nil {
				slog.Error("failed to publish action event",
					"recommendation_id", event.RecommendationID, "error", err.Error())
			}
		}(publisher.ActionEvent{
			RecommendationID: rec.ID,
			BrandID:          rec.BrandID,
			Type:             string(rec.Type),
			Action:           string(input.Action),
			UserID:           input.UserID,
			ActionedAt:       now,
		})
	}

	return &ActionResult{Recommendation: rec, ChangeLog: entry}, nil
}

// actionable: PENDING always; SNOOZED only once snoozedUntil has passed (an
// expired snooze behaves like PENDING). ACCEPTED and REJECTED are final.
func actionable(rec *domain.Recommendation, now time.Time) bool {
	switch rec.Status {
	case domain.StatusPending:
		return true
	case domain.StatusSnoozed:
		return rec.SnoozedUntil == nil || !rec.SnoozedUntil.After(now)
	default:
		return false
	}
}

func snoozeDays(requested int) int {
	if requested > 0 {
		return requested
	}
	return DefaultSnoozeDays
}
