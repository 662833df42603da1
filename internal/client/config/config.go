package config

import "time"

// Config holds runtime settings for the DocuScope CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - HealthCheckInterval: how often the client probes server reachability.
//   - UploaderName: display name attached to uploads before sign-in
//     provides one.
type Config struct {
	ServerBaseURL       string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	UploaderName        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.HealthCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
