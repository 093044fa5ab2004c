package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvBaseURL   = "BOOKDESK_BASE_URL"
	EnvTimeout   = "BOOKDESK_TIMEOUT"
	EnvSessionDB = "BOOKDESK_SESSION_DB"
	EnvLogLevel  = "BOOKDESK_LOG_LEVEL"
	EnvNoColor   = "BOOKDESK_NO_COLOR"
	EnvFile      = "BOOKDESK_ENV_FILE"

	defaultEnvFile = ".env"
)

func envFile(lookup func(string) (string, bool)) string {
	if v, ok := lookup(EnvFile); ok && v != "" {
		return v
	}
	return defaultEnvFile
}

// withDotEnv layers the variables of a .env file under lookup: real
// environment variables win. A missing file is not an error.
func withDotEnv(lookup func(string) (string, bool), path string) func(string) (string, bool) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup
		}
		panic(fmt.Errorf("read %s: %w", path, err))
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}

// parseEnv overlays cfg with BOOKDESK_* variables. NO_COLOR is honoured as
// well. Malformed values panic, like malformed config files do.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvSessionDB); ok && v != "" {
		cfg.SessionDB = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.NoColor = true
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvNoColor, err))
		}
		cfg.NoColor = b
	}
}
