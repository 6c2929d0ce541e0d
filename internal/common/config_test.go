package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 12, config.Content.DefaultLimit)
	assert.Equal(t, 1000, config.Content.FacetCap)
	assert.Equal(t, 3, config.Content.RelatedCount)
	assert.Equal(t, "/images/placeholder.svg", config.Media.Placeholder)
	assert.Equal(t, 5, config.Forms.RateLimitPerMinute)
	assert.False(t, config.IsProduction())
}

func TestLoadFromFilesLayering(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte(`
environment = "production"

[server]
port = 9000
host = "0.0.0.0"
`), 0644))

	override := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(override, []byte(`
[server]
port = 9100
`), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	// Later files win; untouched values survive from earlier layers
	assert.Equal(t, 9100, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.True(t, config.IsProduction())
	// Defaults survive where no file set a value
	assert.Equal(t, 12, config.Content.DefaultLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITRINE_SERVER_PORT", "9200")
	t.Setenv("VITRINE_LOG_LEVEL", "warn")
	t.Setenv("VITRINE_LOG_OUTPUT", "stdout, file")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 9200, config.Server.Port)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()
	ApplyFlagOverrides(config, 7777, "127.0.0.1")
	assert.Equal(t, 7777, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Host)

	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 7777, config.Server.Port)
}
