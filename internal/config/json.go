package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/JehanPinto/SportsLink/internal/flagx"
	"github.com/JehanPinto/SportsLink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	AuthBaseURL         string         `json:"auth_base_url"`
	SportsBaseURL       string         `json:"sports_base_url"`
	SecretKey           string         `json:"secret_key"`
	DefaultLeague       string         `json:"default_league"`
	SessionTTL          timex.Duration `json:"session_ttl"`
	ExpiryCheckInterval timex.Duration `json:"expiry_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c / -config flags via
// flagx.JsonConfigFlags(); when empty no JSON is loaded. Fields absent from
// the file keep their current values. Panics on read or unmarshal errors.
//
// Intended usage is: defaults -> parseEnv -> parseJson -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.SportsBaseURL != "" {
		cfg.SportsBaseURL = jc.SportsBaseURL
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.DefaultLeague != "" {
		cfg.DefaultLeague = jc.DefaultLeague
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.ExpiryCheckInterval.Duration != 0 {
		cfg.ExpiryCheckInterval = time.Duration(jc.ExpiryCheckInterval.Duration)
	}
}
