package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with PREP_* environment variables, loading a .env
// file from the working directory first when one exists. Unset variables leave
// fields untouched. Panics on malformed input, like the other loaders.
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
