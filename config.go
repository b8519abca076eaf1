package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database      string  `yaml:"database"       env:"HUDDLE_DATABASE"`
	SaveDirectory string  `yaml:"save_directory" env:"HUDDLE_SAVE_DIRECTORY"`
	FieldWidth    float64 `yaml:"field_width"    env:"HUDDLE_FIELD_WIDTH"`
	FieldHeight   float64 `yaml:"field_height"   env:"HUDDLE_FIELD_HEIGHT"`
	Grid          bool    `yaml:"grid"           env:"HUDDLE_GRID"`
	Guides        bool    `yaml:"guides"         env:"HUDDLE_GUIDES"`
	GridSize      float64 `yaml:"grid_size"      env:"HUDDLE_GRID_SIZE"`
	SnapThreshold float64 `yaml:"snap_threshold" env:"HUDDLE_SNAP_THRESHOLD"`
	LogFile       string  `yaml:"log_file"       env:"HUDDLE_LOG_FILE"`
	LogLevel      string  `yaml:"log_level"      env:"HUDDLE_LOG_LEVEL"`
}

func defaultConfig() *Config {
	return &Config{
		Database:      "huddle.db",
		FieldWidth:    defaultFieldWidth,
		FieldHeight:   defaultFieldHeight,
		Grid:          true,
		Guides:        true,
		GridSize:      defaultGridSize,
		SnapThreshold: defaultSnapThreshold,
		LogLevel:      "info",
	}
}

// defaultConfigPath is ~/.huddle.yaml, or "" when there is no home.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".huddle.yaml")
}

// loadConfig layers defaults, the YAML file at path and HUDDLE_*
// environment variables. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.SaveDirectory = expandHome(config.SaveDirectory)
	config.Database = expandHome(config.Database)
	config.LogFile = expandHome(config.LogFile)

	if config.FieldWidth <= 0 || config.FieldHeight <= 0 {
		return nil, fmt.Errorf("field size must be positive, got %gx%g", config.FieldWidth, config.FieldHeight)
	}
	return config, nil
}

func expandHome(value string) string {
	if !strings.HasPrefix(value, "~") {
		return value
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return value
	}
	return filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
}

func (c *Config) Field() Field {
	return Field{Width: c.FieldWidth, Height: c.FieldHeight}
}

func (c *Config) Rules() Rules {
	rules := DefaultRules()
	rules.GridSize = c.GridSize
	rules.SnapThreshold = c.SnapThreshold
	return rules
}

// GetSavePath places an export file in the save directory, if any.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// newLogger writes to the configured log file; the terminal belongs to the
// editor, so with no file the records are discarded. The returned closer
// releases the file.
func (c *Config) newLogger() (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, file, nil
}
