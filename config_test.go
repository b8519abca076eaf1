package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huddle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
	assert.Equal(t, Field{Width: 1000, Height: 600}, config.Field())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
database: /tmp/plays.db
field_width: 800
field_height: 400
grid: false
grid_size: 20
snap_threshold: 5
`)
	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plays.db", config.Database)
	assert.False(t, config.Grid)
	assert.True(t, config.Guides)
	assert.Equal(t, Field{Width: 800, Height: 400}, config.Field())

	rules := config.Rules()
	assert.Equal(t, 20.0, rules.GridSize)
	assert.Equal(t, 5.0, rules.SnapThreshold)
	assert.Equal(t, defaultLOSFraction, rules.LOSFraction)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "grid_size: 20\nguides: true\n")
	t.Setenv("HUDDLE_GRID_SIZE", "25")
	t.Setenv("HUDDLE_GUIDES", "false")

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, config.GridSize)
	assert.False(t, config.Guides)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "grid: [unterminated"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "field_width: 0\n"))
	assert.Error(t, err)
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "play.png", config.GetSavePath("play.png"))

	dir := filepath.Join(t.TempDir(), "exports")
	config.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "play.png"), config.GetSavePath("play.png"))
	assert.DirExists(t, dir)
	assert.Equal(t, "/abs/play.png", config.GetSavePath("/abs/play.png"))
}

func TestNewLogger(t *testing.T) {
	config := defaultConfig()
	logger, closer, err := config.newLogger()
	require.NoError(t, err)
	logger.Info("discarded")
	require.NoError(t, closer.Close())

	config.LogFile = filepath.Join(t.TempDir(), "huddle.log")
	logger, closer, err = config.newLogger()
	require.NoError(t, err)
	logger.Info("session started", "tool", ToolSelect)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(config.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")

	config.LogLevel = "chatty"
	_, _, err = config.newLogger()
	assert.Error(t, err)
}
