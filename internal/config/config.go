package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RecommendationConfig struct {
	Env              string `yaml:"env"`
	HTTPServer       `yaml:"http_server"`
	RecommendationDB `yaml:"recommendation_db"`
	LogConfig        `yaml:"log_config"`
	KafkaService     `yaml:"kafka-service"`
	Scheduler        `yaml:"scheduler"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RecommendationDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"recommendation-events"`
}

type Scheduler struct {
	Enabled      bool `yaml:"enabled" env-default:"true"`
	DayOfWeek    int  `yaml:"day_of_week" env-default:"1"`
	Hour         int  `yaml:"hour" env-default:"6"`
	StaggerMs    int  `yaml:"stagger_ms" env-default:"500"`
	LookbackDays int  `yaml:"lookback_days" env-default:"30"`
}

func MustLoad() *RecommendationConfig {
	configPath := os.Getenv("RECOMMENDATION_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("RECOMMENDATION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg RecommendationConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
