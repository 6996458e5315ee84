package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so a stray .env file
// cannot leak into the results.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "weatherfiles", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.ZeroAsAbsent)
	assert.Equal(t, 24, cfg.CacheSize)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_CustomEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("WEATHERMAN_DATA_DIR", "/data/murree")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WEATHERMAN_COLOR", "never")
	t.Setenv("WEATHERMAN_ZERO_AS_ABSENT", "false")
	t.Setenv("WEATHERMAN_CACHE_SIZE", "3")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/weatherman.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/murree", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "never", cfg.Color)
	assert.False(t, cfg.ZeroAsAbsent)
	assert.Equal(t, 3, cfg.CacheSize)
	assert.Equal(t, "/var/lib/node_exporter/weatherman.prom", cfg.MetricsTextfile)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=json\nWEATHERMAN_CACHE_SIZE=7\n"), 0o600))
	t.Setenv("WEATHERMAN_CACHE_SIZE", "5")
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.CacheSize, "environment wins over .env")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"LOG_LEVEL", "verbose"},
		{"LOG_FORMAT", "xml"},
		{"WEATHERMAN_COLOR", "sometimes"},
		{"WEATHERMAN_ZERO_AS_ABSENT", "maybe"},
		{"WEATHERMAN_CACHE_SIZE", "many"},
		{"WEATHERMAN_CACHE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_RequiresDataDir(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "text", Color: "auto", CacheSize: 1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHERMAN_DATA_DIR")
}
