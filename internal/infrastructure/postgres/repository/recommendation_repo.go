package repository

import (
	"errors"
	"fmt"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/mappers"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRecommendationRepository struct {
	db *gorm.DB
}

func NewDefaultRecommendationRepository(db *gorm.DB) *DefaultRecommendationRepository {
	return &DefaultRecommendationRepository{db: db}
}

func (r *DefaultRecommendationRepository) CreateRecommendation(rec *domain.Recommendation) error {
	model := mappers.ToGORMRecommendation(rec)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	rec.CreatedAt = model.CreatedAt
	rec.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultRecommendationRepository) GetRecommendationByID(recommendationID string) (*domain.Recommendation, error) {
	var model models.RecommendationModel
	if err := r.db.Model(&models.RecommendationModel{}).Where("id = ?", recommendationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecommendationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRecommendation(&model), nil
}

func (r *DefaultRecommendationRepository) FindPendingByKey(key domain.DedupKey) (*domain.Recommendation, error) {
	query := r.db.Model(&models.RecommendationModel{}).
		Where("brand_id = ?", key.BrandID).
		Where("type = ?", string(key.Type)).
		Where("status = ?", string(domain.StatusPending))
	if key.Keyword != "" {
		query = query.Where("keyword = ?", key.Keyword)
	}
	if key.CampaignID != "" {
		query = query.Where("campaign_id = ?", key.CampaignID)
	}

	var model models.RecommendationModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainRecommendation(&model), nil
}

// ApplyAction performs the status update and the change log append as one
// transaction. A write of one without the other would corrupt the audit
// trail, so any failure rolls both back.
func (r *DefaultRecommendationRepository) ApplyAction(rec *domain.Recommendation, entry *domain.ChangeLogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":        string(rec.Status),
			"snoozed_until": rec.SnoozedUntil,
			"updated_at":    rec.UpdatedAt,
		}
		result := tx.Model(&models.RecommendationModel{}).Where("id = ?", rec.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecommendationNotFound
		}
		if err := tx.Create(mappers.ToGORMChangeLog(entry)).Error; err != nil {
			return fmt.Errorf("failed to append change log: %w", err)
		}
		return nil
	})
}

func (r *DefaultRecommendationRepository) GetBrandRecommendations(brandID string, filter domain.GetRecommendationsFilter) ([]*domain.Recommendation, int64, error) {
	query := r.db.Model(&models.RecommendationModel{}).Where("brand_id = ?", brandID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Confidence != nil {
		query = query.Where("confidence = ?", string(*filter.Confidence))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	var recModels []models.RecommendationModel
	if err := query.
		Order("generated_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&recModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find recommendations: %w", err)
	}

	recs := make([]*domain.Recommendation, len(recModels))
	for i := range recModels {
		recs[i] = mappers.ToDomainRecommendation(&recModels[i])
	}
	return recs, total, nil
}

func (r *DefaultRecommendationRepository) GetBrandSummary(brandID string) (*domain.RecommendationSummary, error) {
	summary := &domain.RecommendationSummary{
		ByStatus:     make(map[domain.RecommendationStatus]int64),
		ByType:       make(map[domain.RecommendationType]int64),
		ByConfidence: make(map[domain.ConfidenceTier]int64),
	}

	type bucket struct {
		Key   string
		Count int64
	}

	for _, group := range []struct {
		column string
		add    func(key string, count int64)
	}{
		{"status", func(k string, c int64) { summary.ByStatus[domain.RecommendationStatus(k)] = c }},
		{"type", func(k string, c int64) { summary.ByType[domain.RecommendationType(k)] = c }},
		{"confidence", func(k string, c int64) { summary.ByConfidence[domain.ConfidenceTier(k)] = c }},
	} {
		var buckets []bucket
		if err := r.db.Model(&models.RecommendationModel{}).
			Select(group.column+" AS key, COUNT(*) AS count").
			Where("brand_id = ?", brandID).
			Group(group.column).
			Scan(&buckets).Error; err != nil {
			return nil, fmt.Errorf("summary by %s failed: %w", group.column, err)
		}
		for _, b := range buckets {
			group.add(b.Key, b.Count)
		}
	}

	if err := r.db.Model(&models.RecommendationModel{}).
		Where("brand_id = ?", brandID).
		Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	return summary, nil
}
