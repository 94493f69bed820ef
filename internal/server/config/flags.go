package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkraev/inkpress/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   bind address for the HTTP endpoint
//	-d string   PostgreSQL DSN
//	-k string   JWT signing secret
//	-s int      session validity in minutes
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to bind")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT signing secret")
	sessionValidity := fs.Int("s", int(cfg.SessionValidityDuration.Minutes()), "session validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
