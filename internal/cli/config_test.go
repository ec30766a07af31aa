package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig stores body as a TOML file in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ngmap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{Dimension: 2, Edges: 4, LogLevel: "info"}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "dimension = 3\nlog_level = \"debug\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Dimension)
	assert.Equal(t, defaultEdges, cfg.Edges, "missing keys keep their default")

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "dimension = 2\ncolour = \"red\"\n"},
		{"bad level", "log_level = \"loud\"\n"},
		{"bad syntax", "dimension = \n"},
		{"wrong type", "edges = \"four\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(writeConfig(t, "colour = 1\n"))
	assert.ErrorIs(t, err, ErrUnknownConfigKey)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, DefaultConfig(), configFromContext(context.Background()))

	want := Config{Dimension: 5, Edges: 7}
	assert.Equal(t, want, configFromContext(withConfig(context.Background(), want)))
}
