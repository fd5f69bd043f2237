package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// KeywordAggregate sums one keyword's metrics inside one campaign and match
// type over the lookback window. Derived only, never persisted.
type KeywordAggregate struct {
	Keyword          string
	CampaignID       string
	MatchType        domain.MatchType
	TotalImpressions int64
	TotalClicks      int64
	TotalSpend       float64
	TotalOrders      int64
	TotalSales       float64
	DataPoints       int
	DaysSpan         int
	Acos             float64
	Roas             float64
	// LatestMetricID backs the keywordMetricId reference on generated
	// recommendations.
	LatestMetricID string
}

// CampaignAggregate sums a whole campaign over the lookback window.
type CampaignAggregate struct {
	CampaignID       string
	CampaignName     string
	TargetingType    string
	DailyBudget      *float64
	TotalImpressions int64
	TotalClicks      int64
	TotalSpend       float64
	TotalOrders      int64
	TotalSales       float64
	DataPoints       int
	Acos             float64
	Roas             float64
}

// MetricsSnapshot is the aggregator's output for one brand and window. All
// finders consume the same snapshot, so a generation run is deterministic
// relative to the underlying rows.
type MetricsSnapshot struct {
	BrandID      string
	LookbackDays int
	Campaigns    map[string]*domain.AdCampaign
	Keywords     []*KeywordAggregate
	CampaignSums []*CampaignAggregate
}

// MetricAggregator resolves a brand's campaigns and group-sums its keyword
// metrics. Read-only against the store.
type MetricAggregator struct {
	metricRepo domain.MetricRepository
	brandRepo  domain.BrandRepository
	now        func() time.Time
}

func NewMetricAggregator(metricRepo domain.MetricRepository, brandRepo domain.BrandRepository) *MetricAggregator {
	return &MetricAggregator{
		metricRepo: metricRepo,
		brandRepo:  brandRepo,
		now:        time.Now,
	}
}

// Snapshot aggregates the trailing lookbackDays of metrics for the brand.
// A brand with no active credentials or campaigns yields an empty snapshot,
// which callers must treat as "no candidates".
func (a *MetricAggregator) Snapshot(brandID string, lookbackDays int) (*MetricsSnapshot, error) {
	snap := &MetricsSnapshot{
		BrandID:      brandID,
		LookbackDays: lookbackDays,
		Campaigns:    make(map[string]*domain.AdCampaign),
	}

	campaigns, err := a.brandRepo.GetActiveCampaigns(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve brand campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return snap, nil
	}

	campaignIDs := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		snap.Campaigns[c.ID] = c
		campaignIDs = append(campaignIDs, c.ID)
	}

	since := a.now().AddDate(0, 0, -lookbackDays)
	rows, err := a.metricRepo.GetMetricsSince(brandID, campaignIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword metrics: %w", err)
	}

	snap.Keywords = aggregateKeywords(rows)
	snap.CampaignSums = aggregateCampaigns(rows, snap.Campaigns)
	return snap, nil
}

type keywordKey struct {
	keyword    string
	campaignID string
	matchType  domain.MatchType
}

func aggregateKeywords(rows []*domain.KeywordMetric) []*KeywordAggregate {
	groups := make(map[keywordKey]*KeywordAggregate)
	dates := make(map[keywordKey]map[string]struct{})
	latest := make(map[keywordKey]time.Time)

	for _, m := range rows {
		k := keywordKey{keyword: m.Keyword, campaignID: m.CampaignID, matchType: m.MatchType}
		agg, ok := groups[k]
		if !ok {
			agg = &KeywordAggregate{Keyword: m.Keyword, CampaignID: m.CampaignID, MatchType: m.MatchType}
			groups[k] = agg
			dates[k] = make(map[string]struct{})
		}
		agg.TotalImpressions += m.Impressions
		agg.TotalClicks += m.Clicks
		agg.TotalSpend += m.Spend
		agg.TotalOrders += m.Orders
		agg.TotalSales += m.Sales
		dates[k][m.Date.Format("2006-01-02")] = struct{}{}
		if m.Date.After(latest[k]) {
			latest[k] = m.Date
			agg.LatestMetricID = m.ID
		}
	}

	out := make([]*KeywordAggregate, 0, len(groups))
	for k, agg := range groups {
		agg.DataPoints = len(dates[k])
		agg.DaysSpan = daysSpan(dates[k])
		agg.Acos = acos(agg.TotalSpend, agg.TotalSales)
		agg.Roas = roas(agg.TotalSpend, agg.TotalSales)
		out = append(out, agg)
	}
	sortKeywordAggregates(out)
	return out
}

func aggregateCampaigns(rows []*domain.KeywordMetric, campaigns map[string]*domain.AdCampaign) []*CampaignAggregate {
	groups := make(map[string]*CampaignAggregate)
	dates := make(map[string]map[string]struct{})

	for _, m := range rows {
		agg, ok := groups[m.CampaignID]
		if !ok {
			agg = &CampaignAggregate{CampaignID: m.CampaignID}
			if c, found := campaigns[m.CampaignID]; found {
				agg.CampaignName = c.Name
				agg.TargetingType = c.TargetingType
				agg.DailyBudget = c.DailyBudget
			}
			groups[m.CampaignID] = agg
			dates[m.CampaignID] = make(map[string]struct{})
		}
		agg.TotalImpressions += m.Impressions
		agg.TotalClicks += m.Clicks
		agg.TotalSpend += m.Spend
		agg.TotalOrders += m.Orders
		agg.TotalSales += m.Sales
		dates[m.CampaignID][m.Date.Format("2006-01-02")] = struct{}{}
	}

	out := make([]*CampaignAggregate, 0, len(groups))
	for id, agg := range groups {
		agg.DataPoints = len(dates[id])
		agg.Acos = acos(agg.TotalSpend, agg.TotalSales)
		agg.Roas = roas(agg.TotalSpend, agg.TotalSales)
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignID < out[j].CampaignID })
	return out
}

// acos returns spend/sales, or the worst-case sentinel 1 when there are no
// sales. Never NaN or Inf.
func acos(spend, sales float64) float64 {
	if sales > 0 {
		return spend / sales
	}
	return 1
}

// roas returns sales/spend, or 0 when there is no spend.
func roas(spend, sales float64) float64 {
	if spend > 0 {
		return sales / spend
	}
	return 0
}

func daysSpan(dates map[string]struct{}) int {
	var min, max time.Time
	for d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			continue
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	if min.IsZero() {
		return 0
	}
	return int(max.Sub(min).Hours()/24) + 1
}

func sortKeywordAggregates(aggs []*KeywordAggregate) {
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].Keyword != aggs[j].Keyword {
			return aggs[i].Keyword < aggs[j].Keyword
		}
		if aggs[i].CampaignID != aggs[j].CampaignID {
			return aggs[i].CampaignID < aggs[j].CampaignID
		}
		return aggs[i].MatchType < aggs[j].MatchType
	})
}
