package analyzer

import (
	"sort"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// DuplicateKeywordFinder groups keyword aggregates by keyword alone, across
// campaigns and match types, and flags keywords bidding against themselves
// in two or more campaigns.
type DuplicateKeywordFinder struct{}

func (f *DuplicateKeywordFinder) Name() string { return "duplicate_keyword" }

func (f *DuplicateKeywordFinder) Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate {
	type group struct {
		occurrences []CampaignOccurrence
		campaigns   map[string]struct{}
		impressions int64
		clicks      int64
		spend       float64
		orders      int64
		sales       float64
		dataPoints  int
		daysSpan    int
		metricID    string
	}
	groups := make(map[string]*group)
	var order []string
	for _, agg := range snap.Keywords {
		g, ok := groups[agg.Keyword]
		if !ok {
			g = &group{campaigns: make(map[string]struct{})}
			groups[agg.Keyword] = g
			order = append(order, agg.Keyword)
		}
		var name string
		if c, found := snap.Campaigns[agg.CampaignID]; found {
			name = c.Name
		}
		g.occurrences = append(g.occurrences, CampaignOccurrence{
			CampaignID:   agg.CampaignID,
			CampaignName: name,
			MatchType:    agg.MatchType,
			TotalSpend:   agg.TotalSpend,
			TotalOrders:  agg.TotalOrders,
		})
		g.campaigns[agg.CampaignID] = struct{}{}
		g.impressions += agg.TotalImpressions
		g.clicks += agg.TotalClicks
		g.spend += agg.TotalSpend
		g.orders += agg.TotalOrders
		g.sales += agg.TotalSales
		if agg.DataPoints > g.dataPoints {
			g.dataPoints = agg.DataPoints
		}
		if agg.DaysSpan > g.daysSpan {
			g.daysSpan = agg.DaysSpan
		}
		if g.metricID == "" {
			g.metricID = agg.LatestMetricID
		}
	}

	var out []Candidate
	for _, keyword := range order {
		g := groups[keyword]
		// Same keyword under at least two distinct campaigns.
		if len(g.campaigns) < 2 {
			continue
		}
		out = append(out, Candidate{
			Type:        domain.TypeDuplicateKeyword,
			Keyword:     keyword,
			MetricID:    g.metricID,
			Impressions: g.impressions,
			Clicks:      g.clicks,
			Spend:       g.spend,
			Orders:      g.orders,
			Sales:       g.sales,
			Acos:        acos(g.spend, g.sales),
			Roas:        roas(g.spend, g.sales),
			DataPoints:  g.dataPoints,
			DaysSpan:    g.daysSpan,
			Occurrences: g.occurrences,
			Thresholds:  th,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spend > out[j].Spend })
	return out
}
