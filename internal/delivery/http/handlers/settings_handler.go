package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	settingsRepo domain.SettingsRepository
}

func NewSettingsHandler(settingsRepo domain.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

func (h *SettingsHandler) GetThresholds(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	overrides, err := h.settingsRepo.GetThresholdOverrides(companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The read surface reports effective thresholds, not the raw blob.
	effective := domain.DefaultThresholds().Merge(overrides)
	writeJSON(w, http.StatusOK, map[string]any{
		"overrides": overrides,
		"effective": effective,
	})
}

func (h *SettingsHandler) PutThresholds(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var overrides domain.ThresholdOverrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settingsRepo.SaveThresholdOverrides(companyID, &overrides); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.DefaultThresholds().Merge(&overrides))
}
