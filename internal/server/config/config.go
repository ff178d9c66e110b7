// Package config handles configuration for the development login server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the login server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Empty means a random
//     key is generated at startup, invalidating tokens on restart.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - SeedUserEmail / SeedUserPassword: the single development account the
//     server is seeded with.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	SeedUserEmail         string
	SeedUserPassword      string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = ""
	c.TokenValidityDuration = 24 * time.Hour
	c.SeedUserEmail = "user@test.com"
	c.SeedUserPassword = "hunter2"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
