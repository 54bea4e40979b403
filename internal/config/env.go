package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from SPORTSLINK_* environment
// variables. A .env file in the working directory is loaded first when
// present; a missing file is not an error.
//
// Durations accept time.ParseDuration strings (e.g. "168h", "5m"); values
// that fail to parse are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	envStr("SPORTSLINK_DATABASE_DSN", &cfg.DatabaseDSN)
	envStr("SPORTSLINK_AUTH_BASE_URL", &cfg.AuthBaseURL)
	envStr("SPORTSLINK_SPORTS_BASE_URL", &cfg.SportsBaseURL)
	envStr("SPORTSLINK_SECRET_KEY", &cfg.SecretKey)
	envStr("SPORTSLINK_DEFAULT_LEAGUE", &cfg.DefaultLeague)
	envDuration("SPORTSLINK_SESSION_TTL", &cfg.SessionTTL)
	envDuration("SPORTSLINK_EXPIRY_CHECK_INTERVAL", &cfg.ExpiryCheckInterval)
}

func envStr(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return
	}
	*dst = d
}
