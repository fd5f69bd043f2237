package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/mappers"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBrandRepository struct {
	db *gorm.DB
}

func NewDefaultBrandRepository(db *gorm.DB) *DefaultBrandRepository {
	return &DefaultBrandRepository{db: db}
}

func (r *DefaultBrandRepository) GetBrandByID(brandID string) (*domain.Brand, error) {
	var model models.BrandModel
	if err := r.db.Model(&models.BrandModel{}).Where("id = ?", brandID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBrand(&model), nil
}

func (r *DefaultBrandRepository) GetActiveBrands() ([]*domain.Brand, error) {
	var brandModels []models.BrandModel
	if err := r.db.Model(&models.BrandModel{}).
		Where("status = ?", domain.BrandStatusActive).
		Order("created_at ASC").
		Find(&brandModels).Error; err != nil {
		return nil, err
	}
	brands := make([]*domain.Brand, len(brandModels))
	for i := range brandModels {
		brands[i] = mappers.ToDomainBrand(&brandModels[i])
	}
	return brands, nil
}

// GetActiveCampaigns walks credential -> portfolio -> campaign so a brand
// with revoked credentials contributes no campaigns even if stale campaign
// rows remain.
func (r *DefaultBrandRepository) GetActiveCampaigns(brandID string) ([]*domain.AdCampaign, error) {
	var credentialIDs []string
	if err := r.db.Model(&models.IntegrationCredentialModel{}).
		Where("brand_id = ?", brandID).
		Where("integration_type = ?", domain.IntegrationAmazonAds).
		Where("status = ?", domain.CredentialStatusActive).
		Pluck("id", &credentialIDs).Error; err != nil {
		return nil, err
	}
	if len(credentialIDs) == 0 {
		return nil, nil
	}

	var portfolioIDs []string
	if err := r.db.Model(&models.AdPortfolioModel{}).
		Where("credential_id IN ?", credentialIDs).
		Pluck("id", &portfolioIDs).Error; err != nil {
		return nil, err
	}
	if len(portfolioIDs) == 0 {
		return nil, nil
	}

	var campaignModels []models.AdCampaignModel
	if err := r.db.Model(&models.AdCampaignModel{}).
		Where("portfolio_id IN ?", portfolioIDs).
		Find(&campaignModels).Error; err != nil {
		return nil, err
	}
	campaigns := make([]*domain.AdCampaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = mappers.ToDomainAdCampaign(&campaignModels[i])
	}
	return campaigns, nil
}

type DefaultSettingsRepository struct {
	db *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{db: db}
}

func (r *DefaultSettingsRepository) GetThresholdOverrides(companyID string) (*domain.ThresholdOverrides, error) {
	var model models.CompanySettingsModel
	if err := r.db.Model(&models.CompanySettingsModel{}).Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(model.RecommendationThresholds) == 0 {
		return nil, nil
	}
	var overrides domain.ThresholdOverrides
	if err := json.Unmarshal(model.RecommendationThresholds, &overrides); err != nil {
		return nil, err
	}
	return &overrides, nil
}

func (r *DefaultSettingsRepository) SaveThresholdOverrides(companyID string, overrides *domain.ThresholdOverrides) error {
	blob, err := json.Marshal(overrides)
	if err != nil {
		return err
	}
	model := models.CompanySettingsModel{
		CompanyID:                companyID,
		RecommendationThresholds: blob,
		UpdatedAt:                time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recommendation_thresholds", "updated_at"}),
	}).Create(&model).Error
}
