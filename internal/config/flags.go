package config

import (
	"flag"
	"time"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the actas API
//	-d string   path to the local token database
//	-l string   log level (debug, info, warn, error)
//	-t int      request timeout in seconds
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("actas", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the actas API")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "path to the local token database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	// only override the timeout when -t was actually passed, so that a
	// sub-second env value survives the whole-second flag round trip
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
