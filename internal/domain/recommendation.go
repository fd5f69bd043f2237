package domain

import "time"

type RecommendationType string

const (
	TypeKeywordGraduation RecommendationType = "KEYWORD_GRADUATION"
	TypeNegativeKeyword   RecommendationType = "NEGATIVE_KEYWORD"
	TypeDuplicateKeyword  RecommendationType = "DUPLICATE_KEYWORD"
	TypeBudgetIncrease    RecommendationType = "BUDGET_INCREASE"
	TypeBidDecrease       RecommendationType = "BID_DECREASE"
)

// RecommendationTypes is the closed set of types. Generator dispatch and
// dedup key building both switch exhaustively over it.
var RecommendationTypes = []RecommendationType{
	TypeKeywordGraduation,
	TypeNegativeKeyword,
	TypeDuplicateKeyword,
	TypeBudgetIncrease,
	TypeBidDecrease,
}

type RecommendationStatus string

const (
	StatusPending  RecommendationStatus = "PENDING"
	StatusAccepted RecommendationStatus = "ACCEPTED"
	StatusRejected RecommendationStatus = "REJECTED"
	StatusSnoozed  RecommendationStatus = "SNOOZED"
)

type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "HIGH"
	ConfidenceMedium ConfidenceTier = "MEDIUM"
	ConfidenceLow    ConfidenceTier = "LOW"
)

type RecommendationAction string

const (
	ActionAccept RecommendationAction = "ACCEPTED"
	ActionReject RecommendationAction = "REJECTED"
	ActionSnooze RecommendationAction = "SNOOZED"
)

// ExpectedImpact describes the projected effect of applying a recommendation.
type ExpectedImpact struct {
	Metric    string  `json:"metric"`
	Current   float64 `json:"current"`
	Projected float64 `json:"projected"`
}

type Recommendation struct {
	ID              string
	BrandID         string
	Type            RecommendationType
	Status          RecommendationStatus
	Confidence      ConfidenceTier
	Keyword         string
	KeywordMetricID *string
	CampaignID      *string
	Rationale       string
	ExpectedImpact  ExpectedImpact
	Metadata        map[string]interface{}
	GeneratedAt     time.Time
	SnoozedUntil    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DedupKey is the type-specific natural key used to skip regenerating a
// recommendation that already has an unresolved PENDING twin. Keyword or
// CampaignID may be empty depending on the type.
type DedupKey struct {
	BrandID    string
	Type       RecommendationType
	Keyword    string
	CampaignID string
}

type GetRecommendationsFilter struct {
	Status     *RecommendationStatus
	Type       *RecommendationType
	Confidence *ConfidenceTier
	Page       int
	Limit      int
}

type RecommendationSummary struct {
	Total        int64                          `json:"total"`
	ByStatus     map[RecommendationStatus]int64 `json:"by_status"`
	ByType       map[RecommendationType]int64   `json:"by_type"`
	ByConfidence map[ConfidenceTier]int64       `json:"by_confidence"`
}

type RecommendationRepository interface {
	CreateRecommendation(rec *Recommendation) error
	GetRecommendationByID(recommendationID string) (*Recommendation, error)
	// FindPendingByKey returns (nil, nil) when no PENDING row matches.
	FindPendingByKey(key DedupKey) (*Recommendation, error)
	// ApplyAction updates the recommendation status and appends the change
	// log entry in one transaction.
	ApplyAction(rec *Recommendation, entry *ChangeLogEntry) error
	GetBrandRecommendations(brandID string, filter GetRecommendationsFilter) ([]*Recommendation, int64, error)
	GetBrandSummary(brandID string) (*RecommendationSummary, error)
}
