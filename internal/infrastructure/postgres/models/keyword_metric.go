package models

import (
	"time"

	"gorm.io/datatypes"
)

// KeywordMetricModel carries one day of keyword performance. The composite
// unique index is the natural key re-syncs upsert against.
type KeywordMetricModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	BrandID     string    `gorm:"index:idx_metric_brand_date"`
	Keyword     string    `gorm:"uniqueIndex:idx_metric_natural,priority:1;not null"`
	MatchType   string    `gorm:"uniqueIndex:idx_metric_natural,priority:2;not null"`
	Date        time.Time `gorm:"uniqueIndex:idx_metric_natural,priority:3;index:idx_metric_brand_date;not null"`
	Source      string    `gorm:"uniqueIndex:idx_metric_natural,priority:4;not null"`
	PortfolioID string    `gorm:"uniqueIndex:idx_metric_natural,priority:5"`
	CampaignID  string    `gorm:"uniqueIndex:idx_metric_natural,priority:6;index"`
	AdGroupID   string    `gorm:"uniqueIndex:idx_metric_natural,priority:7"`
	Impressions int64
	Clicks      int64
	Spend       float64
	Orders      int64
	Sales       float64
	Metadata    datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (KeywordMetricModel) TableName() string {
	return "keyword_metrics"
}
