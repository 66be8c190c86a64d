package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the storefront HTTP API.
//   - RequestTimeout: per-request deadline for API calls.
//   - StateDBPath: path of the SQLite file holding the persisted session.
type Config struct {
	APIBaseURL     string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.StateDBPath = "storefront.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
