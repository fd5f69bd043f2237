package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/recommendation"
	"github.com/go-chi/chi/v5"
)

type RecommendationHandler struct {
	uc recommendation.RecommendationUsecase
}

func NewRecommendationHandler(uc recommendation.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

type generateRequest struct {
	LookbackDays int  `json:"lookback_days"`
	DryRun       bool `json:"dry_run"`
}

func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	var req generateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	res := h.uc.GenerateRecommendations(r.Context(), recommendation.GenerateOptions{
		BrandID:      brandID,
		LookbackDays: req.LookbackDays,
		DryRun:       req.DryRun,
	})
	writeJSON(w, http.StatusOK, res)
}

func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")
	q := r.URL.Query()

	filter := domain.GetRecommendationsFilter{}
	if v := q.Get("status"); v != "" {
		status := domain.RecommendationStatus(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		recType := domain.RecommendationType(v)
		filter.Type = &recType
	}
	if v := q.Get("confidence"); v != "" {
		conf := domain.ConfidenceTier(v)
		filter.Confidence = &conf
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	page, err := h.uc.GetRecommendationsForBrand(brandID, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *RecommendationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	summary, err := h.uc.GetRecommendationSummary(brandID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type actionRequest struct {
	Action     string `json:"action"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes"`
	UserID     string `json:"user_id"`
	SnoozeDays int    `json:"snooze_days"`
}

func (h *RecommendationHandler) Action(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")
	recID := chi.URLParam(r, "recommendationID")

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.uc.ActionRecommendation(recommendation.ActionInput{
		RecommendationID: recID,
		BrandID:          brandID,
		Action:           domain.RecommendationAction(req.Action),
		Reason:           req.Reason,
		Notes:            req.Notes,
		UserID:           req.UserID,
		SnoozeDays:       req.SnoozeDays,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *RecommendationHandler) RunScheduler(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	summary := h.uc.RunScheduledGeneration(r.Context(), force)
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRecommendationNotFound), errors.Is(err, domain.ErrBrandNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyActioned):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
