package mappers

import (
	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
)

func ToDomainBrand(model *models.BrandModel) *domain.Brand {
	return &domain.Brand{
		ID:        model.ID,
		CompanyID: model.CompanyID,
		Name:      model.Name,
		Status:    model.Status,
	}
}

func ToDomainAdCampaign(model *models.AdCampaignModel) *domain.AdCampaign {
	return &domain.AdCampaign{
		ID:            model.ID,
		BrandID:       model.BrandID,
		PortfolioID:   model.PortfolioID,
		Name:          model.Name,
		TargetingType: model.TargetingType,
		DailyBudget:   model.DailyBudget,
		Status:        model.Status,
	}
}
