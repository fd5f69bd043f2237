package mappers

import (
	"encoding/json"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/models"
)

func ToGORMKeywordMetric(m *domain.KeywordMetric) *models.KeywordMetricModel {
	var metadata []byte
	if m.Metadata != nil {
		metadata, _ = json.Marshal(m.Metadata)
	}
	return &models.KeywordMetricModel{
		ID:          m.ID,
		BrandID:     m.BrandID,
		Keyword:     m.Keyword,
		MatchType:   string(m.MatchType),
		Date:        m.Date,
		Source:      string(m.Source),
		PortfolioID: m.PortfolioID,
		CampaignID:  m.CampaignID,
		AdGroupID:   m.AdGroupID,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Spend:       m.Spend,
		Orders:      m.Orders,
		Sales:       m.Sales,
		Metadata:    metadata,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToDomainKeywordMetric(model *models.KeywordMetricModel) *domain.KeywordMetric {
	m := &domain.KeywordMetric{
		ID:          model.ID,
		BrandID:     model.BrandID,
		Keyword:     model.Keyword,
		MatchType:   domain.MatchType(model.MatchType),
		Date:        model.Date,
		Source:      domain.MetricSource(model.Source),
		PortfolioID: model.PortfolioID,
		CampaignID:  model.CampaignID,
		AdGroupID:   model.AdGroupID,
		Impressions: model.Impressions,
		Clicks:      model.Clicks,
		Spend:       model.Spend,
		Orders:      model.Orders,
		Sales:       model.Sales,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if len(model.Metadata) > 0 {
		json.Unmarshal(model.Metadata, &m.Metadata)
	}
	return m
}
