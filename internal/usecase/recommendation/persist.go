package recommendation

import (
	"log/slog"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

// dedupKeyFor builds the type-specific natural key used to detect an
// existing unresolved recommendation. Exhaustive over the closed type set;
// this and the generator dispatch are the two places a new type must touch.
func dedupKeyFor(rec *domain.Recommendation) domain.DedupKey {
	key := domain.DedupKey{BrandID: rec.BrandID, Type: rec.Type}
	switch rec.Type {
	case domain.TypeDuplicateKeyword:
		key.Keyword = rec.Keyword
	case domain.TypeNegativeKeyword, domain.TypeKeywordGraduation:
		key.Keyword = rec.Keyword
		if rec.CampaignID != nil {
			key.CampaignID = *rec.CampaignID
		}
	case domain.TypeBudgetIncrease, domain.TypeBidDecrease:
		if rec.CampaignID != nil {
			key.CampaignID = *rec.CampaignID
		}
	}
	return key
}

// persistRecommendation writes rec unless a PENDING duplicate exists.
// Persistence failures are logged and swallowed so one bad row never aborts
// the batch: (false, false) means the candidate was simply dropped.
func (uc *DefaultRecommendationUsecase) persistRecommendation(rec *domain.Recommendation) (saved, duplicate bool) {
	existing, err := uc.recRepo.FindPendingByKey(dedupKeyFor(rec))
	if err != nil {
		slog.Error("dedup lookup failed",
			"brand_id", rec.BrandID, "type", rec.Type, "keyword", rec.Keyword, "error", err.Error())
		return false, false
	}
	if existing != nil {
		return false, true
	}
	if err := uc.recRepo.CreateRecommendation(rec); err != nil {
		slog.Error("failed to persist recommendation",
			"brand_id", rec.BrandID, "type", rec.Type, "keyword", rec.Keyword, "error", err.Error())
		return false, false
	}
	return true, false
}
