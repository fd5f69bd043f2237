package kafka

import "time"

// GenerationEvent summarizes one brand's generation run.
type GenerationEvent struct {
	BrandID      string    `json:"brand_id"`
	Generated    int       `json:"generated"`
	Skipped      int       `json:"skipped"`
	Errors       int       `json:"errors"`
	LookbackDays int       `json:"lookback_days"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ActionEvent records a user decision on a recommendation.
type ActionEvent struct {
	RecommendationID string    `json:"recommendation_id"`
	BrandID          string    `json:"brand_id"`
	Type             string    `json:"type"`
	Action           string    `json:"action"`
	UserID           string    `json:"user_id"`
	ActionedAt       time.Time `json:"actioned_at"`
}
