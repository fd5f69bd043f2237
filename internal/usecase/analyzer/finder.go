package analyzer

import "github.com/adforge/adforge-recommendation-service/internal/domain"

// Finder is one analyzer over a metrics snapshot. Implementations are pure
// relative to the snapshot: same snapshot and thresholds, same candidates.
type Finder interface {
	Name() string
	Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate
}

// CampaignOccurrence records one campaign a duplicated keyword appears in.
type CampaignOccurrence struct {
	CampaignID   string           `json:"campaign_id"`
	CampaignName string           `json:"campaign_name"`
	MatchType    domain.MatchType `json:"match_type"`
	TotalSpend   float64          `json:"total_spend"`
	TotalOrders  int64            `json:"total_orders"`
}

// Candidate is a qualifying finding, carrying everything a generator needs:
// the summed metrics, the derived ratios, the data-volume signals for
// confidence scoring, and the merged thresholds it qualified under.
type Candidate struct {
	Type         domain.RecommendationType
	Keyword      string
	CampaignID   string
	CampaignName string
	MatchType    domain.MatchType
	MetricID     string

	Impressions int64
	Clicks      int64
	Spend       float64
	Orders      int64
	Sales       float64
	Acos        float64
	Roas        float64
	DataPoints  int
	DaysSpan    int

	// Budget/bid fields, set by the campaign-level finders.
	DailyBudget       float64
	BudgetUtilization float64
	BidReduction      float64

	// Occurrences is set by the duplicate finder only.
	Occurrences []CampaignOccurrence

	Thresholds domain.Thresholds
}

// ConfidenceInput exposes the candidate's data-volume signals.
func (c Candidate) ConfidenceInput() ConfidenceInput {
	return ConfidenceInput{
		DataPoints:  c.DataPoints,
		Impressions: c.Impressions,
		DaysSpan:    c.DaysSpan,
	}
}

// DefaultFinders returns the full analyzer set in the order generation runs
// them. Order affects log ordering only.
func DefaultFinders() []Finder {
	return []Finder{
		&GraduationFinder{},
		&NegativeKeywordFinder{},
		&DuplicateKeywordFinder{},
		&BudgetIncreaseFinder{},
		&BidDecreaseFinder{},
	}
}
