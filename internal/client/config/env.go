package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with PREP_* environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it. Unset variables leave fields untouched.
//
// Panics on a malformed .env file or unparsable values, like the other
// loaders.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			panic(err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
