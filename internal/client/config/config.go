package config

import "time"

// Config holds runtime settings for the interview-prep client.
//
// Fields:
//   - ServerBaseURL: base URL of the profile backend.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DataDir: directory holding the local SQLite database.
//   - MaxImageSize: largest avatar file (bytes) the client will read.
type Config struct {
	ServerBaseURL       string        `env:"PREP_SERVER_URL"`
	RequestTimeout      time.Duration `env:"PREP_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"PREP_ONLINE_CHECK_INTERVAL"`
	DataDir             string        `env:"PREP_DATA_DIR"`
	MaxImageSize        int64         `env:"PREP_MAX_IMAGE_SIZE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = "data"
	c.MaxImageSize = 5 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
