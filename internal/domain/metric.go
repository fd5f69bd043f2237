package domain

import "time"

type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchPhrase MatchType = "phrase"
	MatchBroad  MatchType = "broad"
	MatchAuto   MatchType = "auto"
)

type MetricSource string

const (
	SourceAPI    MetricSource = "api"
	SourceManual MetricSource = "manual"
)

// KeywordMetric is one day of performance for a keyword inside a campaign.
// Written by the external sync pipeline, read-only for the recommendation
// engine. Re-syncs upsert by the natural key
// (keyword, matchType, date, source, portfolioID, campaignID, adGroupID).
type KeywordMetric struct {
	ID          string
	BrandID     string
	Keyword     string
	MatchType   MatchType
	Date        time.Time
	CampaignID  string
	AdGroupID   string
	PortfolioID string
	Impressions int64
	Clicks      int64
	Spend       float64
	Orders      int64
	Sales       float64
	Source      MetricSource
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CTR returns clicks/impressions, nil when there were no impressions.
func (m *KeywordMetric) CTR() *float64 {
	if m.Impressions == 0 {
		return nil
	}
	v := float64(m.Clicks) / float64(m.Impressions)
	return &v
}

// CPC returns spend/clicks, nil when there were no clicks.
func (m *KeywordMetric) CPC() *float64 {
	if m.Clicks == 0 {
		return nil
	}
	v := m.Spend / float64(m.Clicks)
	return &v
}

type MetricRepository interface {
	UpsertMetrics(metrics []*KeywordMetric) error
	GetMetricsSince(brandID string, campaignIDs []string, since time.Time) ([]*KeywordMetric, error)
}
