package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Evaluation EvaluationConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// EvaluationConfig owns the static list of users the report covers and the
// orchestration knobs: worker count, the partial-failure policy and how long
// a rendered report may be served from cache.
type EvaluationConfig struct {
	UserIDs        []string
	Workers        int
	FailFast       bool
	ReportCacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	workers, err := strconv.Atoi(getEnv("EVAL_WORKERS", "4"))
	if err != nil {
		return nil, errors.New("invalid evaluation worker count")
	}

	cacheTTLSeconds, err := strconv.Atoi(getEnv("EVAL_REPORT_CACHE_TTL_SECONDS", "60"))
	if err != nil {
		return nil, errors.New("invalid report cache ttl")
	}

	redisEnabled := getEnv("REDIS_ENABLED", "false") == "true"

	redisDB := 0
	if redisEnabled {
		redisDB, err = strconv.Atoi(os.Getenv("REDIS_DB"))
		if err != nil {
			return nil, errors.New("missing redis database")
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "KnowingYou Evaluation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "knowing_you"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       redisEnabled,
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Evaluation: EvaluationConfig{
			UserIDs:        splitList(getEnv("EVAL_USER_IDS", "")),
			Workers:        workers,
			FailFast:       getEnv("EVAL_FAIL_FAST", "false") == "true",
			ReportCacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if len(cfg.Evaluation.UserIDs) == 0 {
		return nil, errors.New("missing evaluation user ids")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
