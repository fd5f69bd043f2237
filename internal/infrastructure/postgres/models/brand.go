package models

import (
	"time"

	"gorm.io/datatypes"
)

type BrandModel struct {
	ID        string `gorm:"primaryKey"`
	CompanyID string `gorm:"index"`
	Name      string
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BrandModel) TableName() string {
	return "brands"
}

type IntegrationCredentialModel struct {
	ID              string `gorm:"primaryKey"`
	BrandID         string `gorm:"index:idx_cred_brand_type"`
	IntegrationType string `gorm:"index:idx_cred_brand_type"`
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (IntegrationCredentialModel) TableName() string {
	return "integration_credentials"
}

type AdPortfolioModel struct {
	ID           string `gorm:"primaryKey"`
	BrandID      string `gorm:"index"`
	CredentialID string `gorm:"index"`
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdPortfolioModel) TableName() string {
	return "ad_portfolios"
}

type AdCampaignModel struct {
	ID            string `gorm:"primaryKey"`
	BrandID       string `gorm:"index"`
	PortfolioID   string `gorm:"index"`
	Name          string
	TargetingType string
	DailyBudget   *float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AdCampaignModel) TableName() string {
	return "ad_campaigns"
}

// CompanySettingsModel is the settings blob threshold overrides live in.
type CompanySettingsModel struct {
	CompanyID                string `gorm:"primaryKey"`
	RecommendationThresholds datatypes.JSON
	UpdatedAt                time.Time
}

func (CompanySettingsModel) TableName() string {
	return "company_settings"
}
