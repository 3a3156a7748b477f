package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ReadStrategySplit = "split"
	ReadStrategyJoin  = "join"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Database
	DBUrl            string
	DBMaxConns       int32
	DBMinConns       int32
	DBSimpleProtocol bool // required behind PgBouncer in transaction mode
	DBAutoMigrate    bool
	// Redis
	RedisURL      string
	RedisPassword string
	// Profile behaviour
	ProfileLockTTL        time.Duration
	ProfileLockFailClosed bool
	ProfileReadStrategy   string
	// HTTP
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBUrl:            getEnv("DATABASE_URL", ""),
		DBMaxConns:       int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:       int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBSimpleProtocol: getEnvBool("DB_SIMPLE_PROTOCOL", true),
		DBAutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", true),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		ProfileLockTTL:        time.Duration(getEnvInt("PROFILE_LOCK_TTL_SECONDS", 15)) * time.Second,
		ProfileLockFailClosed: getEnvBool("PROFILE_LOCK_FAIL_CLOSED", false),
		ProfileReadStrategy:   strings.ToLower(getEnv("PROFILE_READ_STRATEGY", ReadStrategySplit)),

		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.ProfileReadStrategy != ReadStrategySplit && cfg.ProfileReadStrategy != ReadStrategyJoin {
		log.Printf("WARNING: unknown PROFILE_READ_STRATEGY %q, using %q", cfg.ProfileReadStrategy, ReadStrategySplit)
		cfg.ProfileReadStrategy = ReadStrategySplit
	}

	// The lock key must outlive the longest request it guards
	if cfg.RequestTimeout > 0 && cfg.ProfileLockTTL < cfg.RequestTimeout {
		log.Printf("WARNING: PROFILE_LOCK_TTL_SECONDS below REQUEST_TIMEOUT_SECONDS, using %s", cfg.RequestTimeout)
		cfg.ProfileLockTTL = cfg.RequestTimeout
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Profile locks and rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
