package mappers

import (
	"encoding/json"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
)

func ToGORMRecommendation(rec *domain.Recommendation) *models.RecommendationModel {
	impact, _ := json.Marshal(rec.ExpectedImpact)
	var metadata []byte
	if rec.Metadata != nil {
		metadata, _ = json.Marshal(rec.Metadata)
	}
	return &models.RecommendationModel{
		ID:              rec.ID,
		BrandID:         rec.BrandID,
		Type:            string(rec.Type),
		Status:          string(rec.Status),
		Confidence:      string(rec.Confidence),
		Keyword:         rec.Keyword,
		KeywordMetricID: rec.KeywordMetricID,
		CampaignID:      rec.CampaignID,
		Rationale:       rec.Rationale,
		ExpectedImpact:  impact,
		Metadata:        metadata,
		GeneratedAt:     rec.GeneratedAt,
		SnoozedUntil:    rec.SnoozedUntil,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func ToDomainRecommendation(model *models.RecommendationModel) *domain.Recommendation {
	rec := &domain.Recommendation{
		ID:              model.ID,
		BrandID:         model.BrandID,
		Type:            domain.RecommendationType(model.Type),
		Status:          domain.RecommendationStatus(model.Status),
		Confidence:      domain.ConfidenceTier(model.Confidence),
		Keyword:         model.Keyword,
		KeywordMetricID: model.KeywordMetricID,
		CampaignID:      model.CampaignID,
		Rationale:       model.Rationale,
		GeneratedAt:     model.GeneratedAt,
		SnoozedUntil:    model.SnoozedUntil,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if len(model.ExpectedImpact) > 0 {
		json.Unmarshal(model.ExpectedImpact, &rec.ExpectedImpact)
	}
	if len(model.Metadata) > 0 {
		json.Unmarshal(model.Metadata, &rec.Metadata)
	}
	return rec
}

func ToGORMChangeLog(entry *domain.ChangeLogEntry) *models.ChangeLogModel {
	before, _ := json.Marshal(entry.Before)
	after, _ := json.Marshal(entry.After)
	return &models.ChangeLogModel{
		ID:               entry.ID,
		RecommendationID: entry.RecommendationID,
		Action:           string(entry.Action),
		Reason:           entry.Reason,
		Notes:            entry.Notes,
		BeforeValues:     before,
		AfterValues:      after,
		UserID:           entry.UserID,
		CreatedAt:        entry.CreatedAt,
	}
}

func ToDomainChangeLog(model *models.ChangeLogModel) *domain.ChangeLogEntry {
	entry := &domain.ChangeLogEntry{
		ID:               model.ID,
		RecommendationID: model.RecommendationID,
		Action:           domain.RecommendationAction(model.Action),
		Reason:           model.Reason,
		Notes:            model.Notes,
		UserID:           model.UserID,
		CreatedAt:        model.CreatedAt,
	}
	if len(model.BeforeValues) > 0 {
		json.Unmarshal(model.BeforeValues, &entry.Before)
	}
	if len(model.AfterValues) > 0 {
		json.Unmarshal(model.AfterValues, &entry.After)
	}
	return entry
}
