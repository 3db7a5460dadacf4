package main

import (
	"context"
	"fmt"
	"os"
	"time"

	aws_pkg "github.com/digitalbuddiesspune/stylishtouches-sub001/pkg/aws"
)

// Config holds all environment variables for the catalog service.
type Config struct {
	Port          string
	Env           string
	MongoURL      string
	DBName        string
	RedisURL      string
	FanoutTimeout time.Duration
}

// LoadConfig loads environment variables into a Config struct and validates
// them. With AWS_USE_SECRETS=true the Mongo URL is read from Secrets
// Manager, falling back to the environment on failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:     os.Getenv("PORT"),
		Env:      os.Getenv("APP_ENV"),
		MongoURL: os.Getenv("MONGO_URL"),
		DBName:   os.Getenv("DB_NAME"),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8083"
	}
	if cfg.DBName == "" {
		cfg.DBName = "stylishtouches"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://redis:6379"
	}

	cfg.FanoutTimeout = 5 * time.Second
	if raw := os.Getenv("CATALOG_FANOUT_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.FanoutTimeout = d
		}
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)

			if mongoURL, err := sm.GetSecret(context.Background(), "catalog/MONGO_URL"); err == nil && mongoURL != "" {
				cfg.MongoURL = mongoURL
			}
		}
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}

	return cfg, nil
}
