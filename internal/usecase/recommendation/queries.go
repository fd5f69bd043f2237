package recommendation

import (
	"github.com/adforge/adforge-recommendation-service/internal/domain"
)

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int64 `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

type RecommendationsPage struct {
	Recommendations []*domain.Recommendation `json:"recommendations"`
	Pagination      Pagination               `json:"pagination"`
}

func (uc *DefaultRecommendationUsecase) GetRecommendationsForBrand(brandID string, filter domain.GetRecommendationsFilter) (*RecommendationsPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	recs, total, err := uc.recRepo.GetBrandRecommendations(brandID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return &RecommendationsPage{
		Recommendations: recs,
		Pagination: Pagination{
			CurrentPage:  filter.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: filter.Limit,
		},
	}, nil
}

func (uc *DefaultRecommendationUsecase) GetRecommendationSummary(brandID string) (*domain.RecommendationSummary, error) {
	return uc.recRepo.GetBrandSummary(brandID)
}
