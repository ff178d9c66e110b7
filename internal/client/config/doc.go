// Package config loads the client's runtime configuration from defaults,
// an optional JSON file, and command-line flags, in that order of
// precedence.
package config
