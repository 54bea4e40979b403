package config

import (
	"flag"
	"os"
	"time"

	"github.com/JehanPinto/SportsLink/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   local sqlite database path (default from Config)
//	-a string   base URL of the remote credential service
//	-s string   base URL of the sports catalog API
//	-k string   secret key for signing local session tokens
//	-l string   default league for team listings
//	-t int      session time-to-live in seconds
//	-i int      expiry check interval in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-a", "-s", "-k", "-l", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local sqlite database path")
	fs.StringVar(&cfg.AuthBaseURL, "a", cfg.AuthBaseURL, "base URL of the credential service")
	fs.StringVar(&cfg.SportsBaseURL, "s", cfg.SportsBaseURL, "base URL of the sports catalog API")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key for local session tokens")
	fs.StringVar(&cfg.DefaultLeague, "l", cfg.DefaultLeague, "default league for team listings")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Seconds()), "session time-to-live (in seconds)")
	expiryCheckInterval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "expiry check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Second
	cfg.ExpiryCheckInterval = time.Duration(*expiryCheckInterval) * time.Second
}
