package config

import "time"

// Config holds runtime settings for the SportsLink CLI.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite database file.
//   - AuthBaseURL: base URL of the remote credential service.
//   - SportsBaseURL: base URL of the sports catalog API.
//   - SecretKey: HMAC secret for signing locally issued session tokens (HS256).
//     Do not use the default in production.
//   - DefaultLeague: league whose teams are listed when no query is given.
//   - SessionTTL: how long a stored session stays valid after login.
//   - ExpiryCheckInterval: how often the running app re-checks session expiry.
type Config struct {
	DatabaseDSN         string
	AuthBaseURL         string
	SportsBaseURL       string
	SecretKey           string
	DefaultLeague       string
	SessionTTL          time.Duration
	ExpiryCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
// NOTE: SecretKey is insecure by default and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "sportslink.db"
	c.AuthBaseURL = "https://dummyjson.com"
	c.SportsBaseURL = "https://www.thesportsdb.com/api/v1/json/3"
	c.SecretKey = "secretKey"
	c.DefaultLeague = "English Premier League"
	c.SessionTTL = 7 * 24 * time.Hour
	c.ExpiryCheckInterval = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
