package http

import (
	"net/http"

	"github.com/adforge/adforge-recommendation-service/internal/delivery/http/handlers"
	"github.com/adforge/adforge-recommendation-service/internal/domain"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/recommendation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	recUC recommendation.RecommendationUsecase,
	metricRepo domain.MetricRepository,
	settingsRepo domain.SettingsRepository,
) http.Handler {
	recHandler := handlers.NewRecommendationHandler(recUC)
	metricHandler := handlers.NewMetricHandler(metricRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/brands/{brandID}", func(r chi.Router) {
		r.Post("/recommendations/generate", recHandler.Generate)
		r.Get("/recommendations", recHandler.List)
		r.Get("/recommendations/summary", recHandler.Summary)
		r.Post("/recommendations/{recommendationID}/action", recHandler.Action)
		r.Post("/metrics", metricHandler.Ingest)
	})

	mux.Route("/companies/{companyID}/settings", func(r chi.Router) {
		r.Get("/thresholds", settingsHandler.GetThresholds)
		r.Put("/thresholds", settingsHandler.PutThresholds)
	})

	mux.Post("/scheduler/run", recHandler.RunScheduler)

	return mux
}
