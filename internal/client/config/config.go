package config

import "time"

// Config holds runtime settings for the pickup CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend REST API, including the /api
//     prefix.
//   - RequestTimeout: hard cap on a single HTTP round trip.
//   - SessionCheckInterval: how often an authenticated session is
//     re-verified against the server.
//   - CacheDSN: sqlite DSN of the local identity cache.
type Config struct {
	ServerBaseURL        string
	RequestTimeout       time.Duration
	SessionCheckInterval time.Duration
	CacheDSN             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionCheckInterval = 60 * time.Second
	c.CacheDSN = "pickup.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
