package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"fingerauth"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-a", "https://auth.example.com", "-d", "/tmp/session.db", "-t", "5", "-b", "my-helper"})

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://auth.example.com", c.ServerURL)
	assert.Equal(t, "/tmp/session.db", c.DatabasePath)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "my-helper", c.BiometricHelper)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t, nil)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, []string{"-x", "whatever", "-a", "https://auth.example.com"})

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://auth.example.com", c.ServerURL)
}
