package main

import (
	"log"

	"heritage-backend/internal/config"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	HealthPort    string
}

// loadConfig derives the worker configuration from the app config
func loadConfig(appCfg *config.Config) *Config {
	cfg := &Config{
		RedisAddr:     appCfg.Redis.Host,
		RedisPassword: appCfg.Redis.Password,
		RedisDB:       appCfg.Redis.DB,
		HealthPort:    "9999",
	}

	log.Printf("[Config] Redis: %s (db %d)", cfg.RedisAddr, cfg.RedisDB)

	return cfg
}
