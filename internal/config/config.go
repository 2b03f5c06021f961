package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	cfgFile     = "reversi/config.json"
	historyFile = "reversi/history"
	validate    = validator.New()
)

// Environment variables consulted after the config file
const (
	EnvTheme    = "REVERSI_THEME"
	EnvHistory  = "REVERSI_HISTORY"
	EnvLogLevel = "LOG_LEVEL"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	Theme       string `json:"theme" validate:"oneof=off green gray brown"`
	LogLevel    string `json:"log_level" validate:"oneof=trace debug info warn error disabled"`
	HistoryFile string `json:"history_file"` // Readline history, empty means the XDG state dir
}

var DefaultConfig = Config{
	Theme:    "off",
	LogLevel: "warn",
}

// Load merges defaults, the XDG config file, .env, the process environment and
// finally overrides (command-line flags), then validates the result once.
// A nil overrides adds nothing.
func Load(overrides func(string) (string, bool)) (*Config, error) {
	config := DefaultConfig

	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := ReadFile(absPath, &config); err != nil {
			return nil, err
		}
	}

	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &InvalidConfig{fmt.Sprintf("reading .env: %v", err)}
	}
	config.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	if overrides != nil {
		config.ApplyEnv(overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ReadFile overlays the JSON file at path onto c
func ReadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", path, err)}
	}
	return nil
}

// ApplyEnv overrides fields from non-empty variables returned by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvHistory); ok && v != "" {
		c.HistoryFile = v
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return &InvalidConfig{fmt.Sprintf("%s %q must be one of [%s]", e.Field(), e.Value(), e.Param())}
		}
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// HistoryPath resolves the readline history location under the XDG state
// directory, creating parent directories
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	return xdg.StateFile(historyFile)
}
