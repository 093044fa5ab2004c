package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the bookdesk CLI.
//
// Fields:
//   - BaseURL: address of the library server, e.g. http://localhost:8080.
//   - RequestTimeout: per-call HTTP timeout.
//   - SessionDB: path of the local SQLite file that keeps the session.
//   - LogLevel: debug, info, warn or error.
//   - NoColor: disables styled notifications.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDB      string
	LogLevel       string
	NoColor        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.SessionDB = "bookdesk.db"
	c.LogLevel = "info"
	c.NoColor = false
}

// LoadConfig builds a Config from the process environment and os.Args.
func LoadConfig() *Config {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load constructs a Config, applies defaults, then overlays the environment
// (including a .env file), a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func Load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, withDotEnv(lookup, envFile(lookup)))
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
