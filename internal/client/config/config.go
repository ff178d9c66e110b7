package config

import "time"

// Config holds runtime settings for the fingerauth client.
//
// Fields:
//   - ServerURL: base URL of the authentication backend.
//   - DatabasePath: path of the local SQLite database holding the session slot.
//   - RequestTimeout: per-request bound for backend calls (a time.Duration).
//   - BiometricHelper: command used for biometric confirmation.
type Config struct {
	ServerURL       string
	DatabasePath    string
	RequestTimeout  time.Duration
	BiometricHelper string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "fingerauth.db"
	c.RequestTimeout = 10 * time.Second
	c.BiometricHelper = "fprintd-verify"
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
