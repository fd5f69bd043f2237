package models

import (
	"time"

	"gorm.io/datatypes"
)

type RecommendationModel struct {
	ID              string `gorm:"primaryKey"`
	BrandID         string `gorm:"index:idx_rec_brand_status"`
	Type            string `gorm:"index:idx_rec_type"`
	Status          string `gorm:"index:idx_rec_brand_status"`
	Confidence      string
	Keyword         string `gorm:"index:idx_rec_keyword"`
	KeywordMetricID *string
	CampaignID      *string `gorm:"index:idx_rec_campaign"`
	Rationale       string
	ExpectedImpact  datatypes.JSON
	Metadata        datatypes.JSON
	GeneratedAt     time.Time
	SnoozedUntil    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (RecommendationModel) TableName() string {
	return "recommendations"
}

type ChangeLogModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	RecommendationID string `gorm:"not null;index"`
	Action           string `gorm:"not null"`
	Reason           string
	Notes            string
	BeforeValues     datatypes.JSON
	AfterValues      datatypes.JSON
	UserID           string
	Recommendation   RecommendationModel `gorm:"foreignKey:RecommendationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt        time.Time
}

func (ChangeLogModel) TableName() string {
	return "recommendation_change_logs"
}
