package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

// MetricHandler is the ingest surface for the external sync pipeline.
// Rows upsert by their natural key so a re-sync never duplicates.
type MetricHandler struct {
	metricRepo domain.MetricRepository
}

func NewMetricHandler(metricRepo domain.MetricRepository) *MetricHandler {
	return &MetricHandler{metricRepo: metricRepo}
}

type metricRow struct {
	Keyword     string                 `json:"keyword"`
	MatchType   string                 `json:"match_type"`
	Date        string                 `json:"date"`
	CampaignID  string                 `json:"campaign_id"`
	AdGroupID   string                 `json:"ad_group_id"`
	PortfolioID string                 `json:"portfolio_id"`
	Impressions int64                  `json:"impressions"`
	Clicks      int64                  `json:"clicks"`
	Spend       float64                `json:"spend"`
	Orders      int64                  `json:"orders"`
	Sales       float64                `json:"sales"`
	Source      string                 `json:"source"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type ingestRequest struct {
	Metrics []metricRow `json:"metrics"`
}

func (h *MetricHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Metrics) == 0 {
		writeError(w, http.StatusBadRequest, "metrics required")
		return
	}

	rows := make([]*domain.KeywordMetric, 0, len(req.Metrics))
	for _, m := range req.Metrics {
		date, err := parseDate(m.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad date: "+m.Date)
			return
		}
		source := domain.MetricSource(m.Source)
		if source == "" {
			source = domain.SourceAPI
		}
		rows = append(rows, &domain.KeywordMetric{
			BrandID:     brandID,
			Keyword:     m.Keyword,
			MatchType:   domain.MatchType(m.MatchType),
			Date:        date,
			CampaignID:  m.CampaignID,
			AdGroupID:   m.AdGroupID,
			PortfolioID: m.PortfolioID,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Spend:       m.Spend,
			Orders:      m.Orders,
			Sales:       m.Sales,
			Source:      source,
			Metadata:    m.Metadata,
		})
	}

	if err := h.metricRepo.UpsertMetrics(rows); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"upserted": len(rows)})
}
