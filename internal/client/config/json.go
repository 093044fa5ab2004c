package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bookdesk/internal/flagx"
	"github.com/dmitrijs2005/bookdesk/internal/timex"
	"github.com/tidwall/jsonc"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero"; only present keys override.
type JsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	SessionDB      *string         `json:"session_db"`
	LogLevel       *string         `json:"log_level"`
	NoColor        *bool           `json:"no_color"`
}

// parseJson overlays cfg with values from the file named by -c or -config.
// Comments and trailing commas are allowed. Panics on read or unmarshal
// errors.
//
// Example:
//
//	{
//	  // local dev server
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "15s",
//	}
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDB != nil {
		cfg.SessionDB = *jc.SessionDB
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
}
