package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/adforge/adforge-recommendation-service/internal/app/background"
	"github.com/adforge/adforge-recommendation-service/internal/config"
	delivery "github.com/adforge/adforge-recommendation-service/internal/delivery/http"
	publisher "github.com/adforge/adforge-recommendation-service/internal/infrastructure/kafka"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/metrics"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/migrate"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres"
	"github.com/adforge/adforge-recommendation-service/internal/infrastructure/postgres/repository"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/analyzer"
	"github.com/adforge/adforge-recommendation-service/internal/usecase/recommendation"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.RecommendationDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RecommendationDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka publisher for generation and action events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewRecommendationPublisher(brokers, cfg.KafkaService.Topic)
	defer kafkaPublisher.Close()

	// Repositories
	recRepo := repository.NewDefaultRecommendationRepository(db)
	brandRepo := repository.NewDefaultBrandRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)
	metricRepo := repository.NewDefaultMetricRepository(db)

	// Prometheus counters
	recMetrics := metrics.NewRecommendationMetrics()

	aggregator := analyzer.NewMetricAggregator(metricRepo, brandRepo)

	uc := recommendation.NewDefaultRecommendationUsecase(
		recRepo,
		brandRepo,
		settingsRepo,
		aggregator,
		kafkaPublisher,
		recMetrics,
		recommendation.SchedulerSettings{
			Enabled:      cfg.Scheduler.Enabled,
			DayOfWeek:    time.Weekday(cfg.Scheduler.DayOfWeek),
			Hour:         cfg.Scheduler.Hour,
			Stagger:      time.Duration(cfg.Scheduler.StaggerMs) * time.Millisecond,
			LookbackDays: cfg.Scheduler.LookbackDays,
		},
	)

	// Weekly generation driver
	tasks := background.NewBackgroundTasks(uc, cfg.Scheduler.Hour)
	tasks.StartAll(context.Background())

	router := delivery.NewRouter(uc, metricRepo, settingsRepo)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
