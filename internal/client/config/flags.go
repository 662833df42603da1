package config

import (
	"flag"
	"os"
	"time"

	"github.com/docuscope/docuscope-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-i int      health check interval in seconds (default from Config)
//	-n string   uploader display name
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	healthInterval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "health check interval (in seconds)")
	fs.StringVar(&cfg.UploaderName, "n", cfg.UploaderName, "uploader display name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.HealthCheckInterval = time.Duration(*healthInterval) * time.Second
}
