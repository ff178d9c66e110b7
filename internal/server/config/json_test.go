package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"fingerauth-server"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr": ":9090",
		"secret_key": "my_secret_key",
		"token_validity_duration": "1h",
		"seed_user_email": "dev@test.com",
		"seed_user_password": "password"
	}`), 0o600))

	withArgs(t, []string{"-c", path})

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "my_secret_key", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, "dev@test.com", c.SeedUserEmail)
	assert.Equal(t, "password", c.SeedUserPassword)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr": ":9090"}`), 0o600))

	withArgs(t, []string{"-c", path})

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.NotZero(t, c.TokenValidityDuration, "partial JSON must not wipe the token TTL")
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, "user@test.com", c.SeedUserEmail)
	assert.Equal(t, "hunter2", c.SeedUserPassword)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t, nil)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	withArgs(t, []string{"-c", path})

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
