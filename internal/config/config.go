package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"tripcheck/pkg/conflicts"
)

type Config struct {
	Port          string
	Env           string
	PostgresURL   string
	JWTSecret     string
	ScheduleZone  string
	MapboxToken   string
	CacheTTL      time.Duration
	CacheEntries  int
	DetectDefault conflicts.Options
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required outside development")

// Load reads .env if present, then the process environment. JWT_SECRET must
// be set unless APP_ENV=development, where a random per-process secret is used.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getString("PORT", "8080"),
		Env:          getString("APP_ENV", "production"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ScheduleZone: getString("SCHEDULE_TZ", "Asia/Ho_Chi_Minh"),
		MapboxToken:  os.Getenv("MAPBOX_ACCESS_TOKEN"),
		CacheTTL:     getDuration("CONFLICT_CACHE_TTL", 5*time.Minute),
		CacheEntries: getInt("CONFLICT_CACHE_ENTRIES", 1000),
		DetectDefault: conflicts.Options{
			MinBufferMinutes:   getInt("CONFLICT_MIN_BUFFER_MINUTES", conflicts.DefaultMinBufferMinutes),
			TightBufferMinutes: getInt("CONFLICT_TIGHT_BUFFER_MINUTES", conflicts.DefaultTightBufferMinutes),
			LongGapMinutes:     getInt("CONFLICT_LONG_GAP_MINUTES", conflicts.DefaultLongGapMinutes),
			IncludeInfos:       getBool("CONFLICT_INCLUDE_INFOS", conflicts.DefaultIncludeInfos),
		},
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWTSecret = uuid.NewString()
	}
	return cfg, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getInt ignores negative and malformed values.
func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}
