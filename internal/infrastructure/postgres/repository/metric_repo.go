package repository

import (
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/mappers"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMetricRepository struct {
	db *gorm.DB
}

func NewDefaultMetricRepository(db *gorm.DB) *DefaultMetricRepository {
	return &DefaultMetricRepository{db: db}
}

// UpsertMetrics writes a sync batch, updating rows that already exist under
// the natural key so re-syncs never duplicate a day.
func (r *DefaultMetricRepository) UpsertMetrics(metrics []*domain.KeywordMetric) error {
	if len(metrics) == 0 {
		return nil
	}
	rows := make([]*models.KeywordMetricModel, len(metrics))
	for i, m := range metrics {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		rows[i] = mappers.ToGORMKeywordMetric(m)
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "keyword"},
			{Name: "match_type"},
			{Name: "date"},
			{Name: "source"},
			{Name: "portfolio_id"},
			{Name: "campaign_id"},
			{Name: "ad_group_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"impressions", "clicks", "spend", "orders", "sales", "metadata", "updated_at",
		}),
	}).Create(&rows).Error
}

func (r *DefaultMetricRepository) GetMetricsSince(brandID string, campaignIDs []string, since time.Time) ([]*domain.KeywordMetric, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}
	var rows []models.KeywordMetricModel
	if err := r.db.Model(&models.KeywordMetricModel{}).
		Where("brand_id = ?", brandID).
		Where("campaign_id IN ?", campaignIDs).
		Where("date >= ?", since).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.KeywordMetric, len(rows))
	for i := range rows {
		out[i] = mappers.ToDomainKeywordMetric(&rows[i])
	}
	return out, nil
}
