// Package config loads runtime configuration for the bookdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables BOOKDESK_BASE_URL, BOOKDESK_TIMEOUT,
//     BOOKDESK_SESSION_DB, BOOKDESK_LOG_LEVEL, BOOKDESK_NO_COLOR (and NO_COLOR).
//     A .env file in the working directory (or at BOOKDESK_ENV_FILE) supplies
//     values the real environment does not set.
//  3. Optional JSON file selected via -c or -config. Comments are allowed.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the library server
//	-t int      request timeout (seconds)
//	-d string   local session database
//	-l string   log level
//	-no-color   disable styled notifications
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "15s",
//	  "session_db": "bookdesk.db",
//	  "log_level": "info",
//	  "no_color": false
//	}
//
// Malformed files, flags or environment values panic; main does not recover.
package config
