package recommendation

import (
	"fmt"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/analyzer"
	"github.com/jaevor/go-nanoid"
)

// Fixed projection heuristics, one per recommendation type.
const (
	graduationAcosImprovement = 0.15
	duplicateSpendReduction   = 0.20
	budgetIncreaseFactor      = 1.20
)

// buildRecommendation turns a qualifying candidate into a fully-formed
// recommendation. Pure aside from ID generation; dispatch is an exhaustive
// switch over the closed type set.
func (uc *DefaultRecommendationUsecase) buildRecommendation(brandID string, cand analyzer.Candidate) (*domain.Recommendation, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recommendation{
		ID:          idGenerator(),
		BrandID:     brandID,
		Type:        cand.Type,
		Status:      domain.StatusPending,
		Keyword:     cand.Keyword,
		Confidence:  analyzer.ConfidenceFor(cand.ConfidenceInput()),
		GeneratedAt: uc.now(),
	}
	if cand.MetricID != "" {
		metricID := cand.MetricID
		rec.KeywordMetricID = &metricID
	}
	// DUPLICATE_KEYWORD spans campaigns, so it carries no campaign ref.
	if cand.CampaignID != "" && cand.Type != domain.TypeDuplicateKeyword {
		campaignID := cand.CampaignID
		rec.CampaignID = &campaignID
	}

	switch cand.Type {
	case domain.TypeKeywordGraduation:
		buildGraduation(rec, cand)
	case domain.TypeNegativeKeyword:
		buildNegativeKeyword(rec, cand)
	case domain.TypeDuplicateKeyword:
		buildDuplicateKeyword(rec, cand)
	case domain.TypeBudgetIncrease:
		buildBudgetIncrease(rec, cand)
	case domain.TypeBidDecrease:
		buildBidDecrease(rec, cand)
	default:
		return nil, fmt.Errorf("no generator for recommendation type %s", cand.Type)
	}
	return rec, nil
}

func buildGraduation(rec *domain.Recommendation, cand analyzer.Candidate) {
	th := cand.Thresholds.Graduation
	rec.Rationale = fmt.Sprintf(
		"Keyword %q in discovery campaign %q has proven itself: %d orders on $%.2f spend at %.1f%% ACOS over %d days of data. It meets the graduation thresholds (ACOS <= %.1f%%, orders >= %d, spend >= $%.2f) and is ready to move to an accelerate campaign with exact match targeting.",
		cand.Keyword, cand.CampaignName, cand.Orders, cand.Spend, cand.Acos*100,
		cand.DataPoints, th.MaxAcos*100, th.MinConversions, th.MinSpend,
	)
	rec.ExpectedImpact = domain.ExpectedImpact{
		Metric:    "acos",
		Current:   cand.Acos,
		Projected: cand.Acos * (1 - graduationAcosImprovement),
	}
	rec.Metadata = map[string]interface{}{
		"campaign_id":    cand.CampaignID,
		"campaign_name":  cand.CampaignName,
		"match_type":     string(cand.MatchType),
		"total_spend":    cand.Spend,
		"total_orders":   cand.Orders,
		"total_sales":    cand.Sales,
		"acos":           cand.Acos,
		"roas":           cand.Roas,
		"data_points":    cand.DataPoints,
		"impressions":    cand.Impressions,
		"thresholds_met": th,
	}
}

func buildNegativeKeyword(rec *domain.Recommendation, cand analyzer.Candidate) {
	th := cand.Thresholds.Negative
	rec.Rationale = fmt.Sprintf(
		"Keyword %q in campaign %q has spent $%.2f across %d clicks with %d orders over %d days. It clears the negative-keyword thresholds (spend >= $%.2f, orders <= %d, clicks >= %d); adding it as a negative keyword stops the wasted spend.",
		cand.Keyword, cand.CampaignName, cand.Spend, cand.Clicks, cand.Orders,
		cand.DataPoints, th.MinSpend, th.MaxOrders, th.MinClicks,
	)
	rec.ExpectedImpact = domain.ExpectedImpact{
		Metric:    "spend",
		Current:   cand.Spend,
		Projected: 0,
	}
	rec.Metadata = map[string]interface{}{
		"campaign_id":    cand.CampaignID,
		"campaign_name":  cand.CampaignName,
		"match_type":     string(cand.MatchType),
		"total_spend":    cand.Spend,
		"total_clicks":   cand.Clicks,
		"total_orders":   cand.Orders,
		"data_points":    cand.DataPoints,
		"impressions":    cand.Impressions,
		"thresholds_met": th,
	}
}

func buildDuplicateKeyword(rec *domain.Recommendation, cand analyzer.Candidate) {
	rec.Rationale = fmt.Sprintf(
		"Keyword %q is active in %d campaigns at the same time, spending $%.2f in total. Overlapping campaigns bid against each other and inflate CPC; consolidating the keyword into a single campaign should reduce spend by about %.0f%% without losing sales.",
		cand.Keyword, len(cand.Occurrences), cand.Spend, duplicateSpendReduction*100,
	)
	rec.ExpectedImpact = domain.ExpectedImpact{
		Metric:    "spend",
		Current:   cand.Spend,
		Projected: cand.Spend * (1 - duplicateSpendReduction),
	}
	rec.Metadata = map[string]interface{}{
		"occurrences": cand.Occurrences,
		"total_spend": cand.Spend,
		"total_sales": cand.Sales,
		"acos":        cand.Acos,
		"data_points": cand.DataPoints,
		"impressions": cand.Impressions,
	}
}

func buildBudgetIncrease(rec *domain.Recommendation, cand analyzer.Candidate) {
	th := cand.Thresholds.Budget
	suggestedBudget := cand.DailyBudget * budgetIncreaseFactor
	// Sales scale with the new budget at constant ACOS.
	projectedSales := cand.Sales * budgetIncreaseFactor
	rec.Rationale = fmt.Sprintf(
		"Campaign %q is using %.0f%% of its $%.2f daily budget while returning %.2fx ROAS at %.1f%% ACOS (thresholds: utilization >= %.0f%%, ROAS >= %.2fx or ACOS < %.1f%%). Raising the budget to $%.2f lets it capture the demand it is currently cut off from.",
		cand.CampaignName, cand.BudgetUtilization*100, cand.DailyBudget, cand.Roas, cand.Acos*100,
		th.BudgetUtilization*100, th.MinRoas, th.MaxAcosForIncrease*100, suggestedBudget,
	)
	rec.ExpectedImpact = domain.ExpectedImpact{
		Metric:    "sales",
		Current:   cand.Sales,
		Projected: projectedSales,
	}
	rec.Metadata = map[string]interface{}{
		"campaign_name":      cand.CampaignName,
		"daily_budget":       cand.DailyBudget,
		"suggested_budget":   suggestedBudget,
		"budget_utilization": cand.BudgetUtilization,
		"total_spend":        cand.Spend,
		"total_sales":        cand.Sales,
		"acos":               cand.Acos,
		"roas":               cand.Roas,
		"data_points":        cand.DataPoints,
		"thresholds_met":     th,
	}
}

func buildBidDecrease(rec *domain.Recommendation, cand analyzer.Candidate) {
	th := cand.Thresholds.Budget
	// Projected ACOS improves by half the bid-reduction fraction.
	projectedAcos := cand.Acos * (1 - cand.BidReduction/2)
	rec.Rationale = fmt.Sprintf(
		"Campaign %q is running at %.1f%% ACOS with only %.2fx ROAS (thresholds: ACOS >= %.1f%%, ROAS < %.2fx). Lowering bids by %.0f%% should bring ACOS toward the %.1f%% target while keeping most of the traffic.",
		cand.CampaignName, cand.Acos*100, cand.Roas,
		th.MinAcosForDecrease*100, th.MinRoas,
		cand.BidReduction*100, th.MaxAcosForIncrease*100,
	)
	rec.ExpectedImpact = domain.ExpectedImpact{
		Metric:    "acos",
		Current:   cand.Acos,
		Projected: projectedAcos,
	}
	rec.Metadata = map[string]interface{}{
		"campaign_name":  cand.CampaignName,
		"bid_reduction":  cand.BidReduction,
		"target_acos":    th.MaxAcosForIncrease,
		"total_spend":    cand.Spend,
		"total_sales":    cand.Sales,
		"acos":           cand.Acos,
		"roas":           cand.Roas,
		"data_points":    cand.DataPoints,
		"thresholds_met": th,
	}
}
