package analyzer

import (
	"sort"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// BudgetIncreaseFinder flags campaigns that keep exhausting their daily
// budget while performing well enough to deserve more of it.
type BudgetIncreaseFinder struct{}

func (f *BudgetIncreaseFinder) Name() string { return "budget_increase" }

func (f *BudgetIncreaseFinder) Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate {
	var out []Candidate
	for _, agg := range snap.CampaignSums {
		if agg.DailyBudget == nil || *agg.DailyBudget <= 0 || agg.DataPoints == 0 {
			continue
		}
		utilization := (agg.TotalSpend / float64(agg.DataPoints)) / *agg.DailyBudget
		if utilization < th.Budget.BudgetUtilization {
			continue
		}
		// Either performance condition is enough once utilization holds.
		performing := agg.Acos < th.Budget.MaxAcosForIncrease || agg.Roas >= th.Budget.MinRoas
		if !performing {
			continue
		}
		out = append(out, Candidate{
			Type:              domain.TypeBudgetIncrease,
			Keyword:           agg.CampaignName,
			CampaignID:        agg.CampaignID,
			CampaignName:      agg.CampaignName,
			Impressions:       agg.TotalImpressions,
			Clicks:            agg.TotalClicks,
			Spend:             agg.TotalSpend,
			Orders:            agg.TotalOrders,
			Sales:             agg.TotalSales,
			Acos:              agg.Acos,
			Roas:              agg.Roas,
			DataPoints:        agg.DataPoints,
			DailyBudget:       *agg.DailyBudget,
			BudgetUtilization: utilization,
			Thresholds:        th,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Roas > out[j].Roas })
	return out
}

// BidDecreaseFinder flags campaigns spending at an ACOS well past target
// without the ROAS to justify it, and sizes a bid reduction of 15-20%.
type BidDecreaseFinder struct{}

func (f *BidDecreaseFinder) Name() string { return "bid_decrease" }

func (f *BidDecreaseFinder) Find(snap *MetricsSnapshot, th domain.Thresholds) []Candidate {
	var out []Candidate
	for _, agg := range snap.CampaignSums {
		if agg.Acos < th.Budget.MinAcosForDecrease {
			continue
		}
		if agg.Roas >= th.Budget.MinRoas {
			continue
		}
		var budget float64
		if agg.DailyBudget != nil {
			budget = *agg.DailyBudget
		}
		out = append(out, Candidate{
			Type:         domain.TypeBidDecrease,
			Keyword:      agg.CampaignName,
			CampaignID:   agg.CampaignID,
			CampaignName: agg.CampaignName,
			Impressions:  agg.TotalImpressions,
			Clicks:       agg.TotalClicks,
			Spend:        agg.TotalSpend,
			Orders:       agg.TotalOrders,
			Sales:        agg.TotalSales,
			Acos:         agg.Acos,
			Roas:         agg.Roas,
			DataPoints:   agg.DataPoints,
			DailyBudget:  budget,
			BidReduction: bidReduction(agg.Acos, th.Budget.MaxAcosForIncrease),
			Thresholds:   th,
		})
	}
	// Worst ACOS first.
	sort.Slice(out, func(i, j int) bool { return out[i].Acos > out[j].Acos })
	return out
}

// bidReduction sizes the suggested bid cut: the fraction of ACOS above
// target, clamped to the 15-20% band.
func bidReduction(currentAcos, targetAcos float64) float64 {
	if currentAcos <= 0 {
		return 0.15
	}
	r := (currentAcos - targetAcos) / currentAcos
	if r > 0.20 {
		r = 0.20
	}
	if r < 0.15 {
		r = 0.15
	}
	return r
}
