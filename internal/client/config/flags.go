package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
//	-d string   data directory
//	-m int      max avatar size in bytes
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c/-config stays with the JSON loader.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the profile server")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the local database")
	fs.Int64Var(&cfg.MaxImageSize, "m", cfg.MaxImageSize, "max avatar size (in bytes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
