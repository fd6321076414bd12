package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/susround/internal/factory"
	redisstorage "github.com/mcoot/susround/internal/storage/redis"
)

// envConfig is the server configuration read from the environment
type envConfig struct {
	Port        int
	LogLevel    slog.Level
	StorageType string
	RedisURL    string
	SessionTTL  time.Duration
	ContentPath string
}

// loadEnv reads the server configuration through getenv
func loadEnv(getenv func(string) string) (envConfig, error) {
	cfg := envConfig{
		Port:        8080,
		LogLevel:    slog.LevelInfo,
		StorageType: getenv("STORAGE_TYPE"),
		RedisURL:    getenv("REDIS_URL"),
		SessionTTL:  redisstorage.DefaultConfig().SessionTTL,
		ContentPath: getenv("CONTENT_PATH"),
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL %q", v)
		}
	}

	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return cfg, fmt.Errorf("invalid SESSION_TTL %q", v)
		}
		cfg.SessionTTL = ttl
	}

	if cfg.StorageType == factory.StorageTypeRedis && cfg.RedisURL == "" {
		return cfg, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

// factoryConfig builds the application factory config
func (c envConfig) factoryConfig(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
		ContentPath: c.ContentPath,
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.SessionTTL = c.SessionTTL
		cfg.RedisConfig = &redisCfg
	}

	return cfg
}
