package analyzer

import "github.com/adforge/adforge-recommendation-service/internal/domain"

// GraduationFinder surfaces keywords proven inside discovery campaigns that
// are ready to move to a tightly-targeted accelerate campaign.
type GraduationFinder struct{}

func (f *GraduationFinder) Name() string { return "keyword_graduation" }

func (f *GraduationFinder) Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate {
	var out []Candidate
	for _, agg := range snap.Keywords {
		campaign, ok := snap.Campaigns[agg.CampaignID]
		if !ok {
			continue
		}
		if ClassifyCampaign(campaign.Name, campaign.TargetingType) != ClassDiscovery {
			continue
		}
		// All three gates must hold; partial eligibility never qualifies.
		if agg.Acos > th.Graduation.MaxAcos {
			continue
		}
		if agg.TotalOrders < th.Graduation.MinConversions {
			continue
		}
		if agg.TotalSpend < th.Graduation.MinSpend {
			continue
		}
		out = append(out, Candidate{
			Type:         domain.TypeKeywordGraduation,
			Keyword:      agg.Keyword,
			CampaignID:   agg.CampaignID,
			CampaignName: campaign.Name,
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
	return out
}
