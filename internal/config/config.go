package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // Turso URL or a local file path.
	AuthToken        string `toml:"auth_token"`
}

type DisplayConfig struct {
	Timezone string `toml:"timezone"`
	Decimals int    `toml:"decimals"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

const (
	appDir        = "fuel"
	devDatabase   = "file:./local.db"
	defaultDBFile = "fuel.db"
)

var validLevels = []string{"debug", "info", "warn", "error"}

func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Timezone: "Local",
			Decimals: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Returns the directory holding config, profile and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDir), nil
}

// Returns the path to the config file. FUEL_CONFIG takes precedence.
func GetConfigPath() (string, error) {
	if p := os.Getenv("FUEL_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, falling back to defaults
// when there is none, then applies the environment.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// A missing .env is fine, the variables may come from the shell.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		c.DB.ConnectionString = url
	}
	if token := os.Getenv("TURSO_AUTH_TOKEN"); token != "" {
		c.DB.AuthToken = token
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		c.DB.ConnectionString = devDatabase
		c.Log.Development = true
	}

	if c.DB.ConnectionString == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.DB.ConnectionString = filepath.Join(dir, defaultDBFile)
	}
	return nil
}

func (c *Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range validLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(validLevels, ", "), c.Log.Level)
	}

	if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
		return fmt.Errorf("display.timezone %q: %w", c.Display.Timezone, err)
	}

	if c.Display.Decimals < 0 {
		return fmt.Errorf("display.decimals cannot be negative, got %d", c.Display.Decimals)
	}
	return nil
}

// Location resolves the configured timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
