package analyzer

import (
	"sort"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// NegativeKeywordFinder surfaces keywords burning spend and clicks without
// converting. No campaign-type restriction: wasted spend is wasted spend.
type NegativeKeywordFinder struct{}

func (f *NegativeKeywordFinder) Name() string { return "negative_keyword" }

func (f *NegativeKeywordFinder) Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate {
	var out []Candidate
	for _, agg := range snap.Keywords {
		if agg.TotalSpend < th.Negative.MinSpend {
			continue
		}
		if agg.TotalOrders > th.Negative.MaxOrders {
			continue
		}
		if agg.TotalClicks < th.Negative.MinClicks {
			continue
		}
		var name string
		if c, ok := snap.Campaigns[agg.CampaignID]; ok {
			name = c.Name
		}
		out = append(out, Candidate{
			Type:         domain.TypeNegativeKeyword,
			Keyword:      agg.Keyword,
			CampaignID:   agg.CampaignID,
			CampaignName: name,
			MatchType:    agg.MatchType,
			MetricID:     agg.LatestMetricID,
			Impressions:  agg.TotalImpressions,
			Clicks:       agg.TotalClicks,
			Spend:        agg.TotalSpend,
			Orders:       agg.TotalOrders,
			Sales:        agg.TotalSales,
			Acos:         agg.Acos,
			Roas:         agg.Roas,
			DataPoints:   agg.DataPoints,
			DaysSpan:     agg.DaysSpan,
			Thresholds:   th,
		})
	}
	// Worst offenders first.
	sort.Slice(out, func(i, j int) bool { return out[i].Spend > out[j].Spend })
	return out
}
