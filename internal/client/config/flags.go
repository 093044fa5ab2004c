package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/bookdesk/internal/flagx"
)

// parseFlags populates cfg from command-line flags.
//
//	-a string   base URL of the library server
//	-t int      request timeout in seconds
//	-d string   path of the local session database
//	-l string   log level
//	-no-color   plain notifications
//
// args is filtered with flagx so flags owned by other loaders (-c) do not
// trip the FlagSet.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgsWithBools(args, []string{"-a", "-t", "-d", "-l"}, []string{"-no-color", "--no-color"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the library server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable styled output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
