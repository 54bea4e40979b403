// Package config loads runtime configuration for the SportsLink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. SPORTSLINK_* environment variables, with optional .env support.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   local sqlite database path
//	-a string   base URL of the remote credential service
//	-s string   base URL of the sports catalog API
//	-k string   secret key for local session tokens
//	-l string   default league for team listings
//	-t int      session time-to-live (seconds)
//	-i int      expiry check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5m" or integer nanoseconds:
//
//	{
//	  "database_dsn": "sportslink.db",
//	  "auth_base_url": "https://dummyjson.com",
//	  "sports_base_url": "https://www.thesportsdb.com/api/v1/json/3",
//	  "default_league": "English Premier League",
//	  "session_ttl": "168h",
//	  "expiry_check_interval": "5m"
//	}
package config
