package postgres

import (
	"log"

	"github.com/adforge/adforge-recommendation-service/internal/config"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RecommendationConfig) *gorm.DB {
	dsn := cfg.RecommendationDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.BrandModel{},
		&models.IntegrationCredentialModel{},
		&models.AdPortfolioModel{},
		&models.AdCampaignModel{},
		&models.CompanySettingsModel{},
		&models.KeywordMetricModel{},
		&models.RecommendationModel{},
		&models.ChangeLogModel{},
	)

	return db
}
