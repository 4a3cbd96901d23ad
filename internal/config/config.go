// Package config loads and saves the application settings file
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that take precedence over the config file
const (
	EnvDatabasePath = "DEVTRACK_DB_PATH"
	EnvLogPath      = "DEVTRACK_LOG_PATH"
	EnvLogLevel     = "DEVTRACK_LOG_LEVEL"
)

const (
	appDirName     = ".devtrack"
	databaseFile   = "devtrack_projects.db"
	logFile        = "devtrack.log"
	defaultLogLvl  = "info"
	configDirName  = "devtrack"
	configFileName = "config.yaml"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	LogPath      string      `yaml:"log_path"`
	LogLevel     string      `yaml:"log_level"`
	ColorScheme  ColorScheme `yaml:"theme"`

	path string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config at path, or at the default location when path is empty.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			// Return default config if we can't determine config path
			config := Default()
			config.applyEnv()
			return config, nil
		}
	}

	config := &Config{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	config.applyDefaults()
	return config, nil
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		path, err := DefaultPath()
		if err != nil {
			return err
		}
		c.path = path
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0o644)
}

// Path returns the file this config is read from and saved to
func (c *Config) Path() string {
	return c.path
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, configDirName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// dataDir is where the database and logs live unless configured otherwise
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDatabasePath)); v != "" {
		c.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogPath)); v != "" {
		c.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(dataDir(), databaseFile)
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(dataDir(), "logs", logFile)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLvl
	}
	c.ColorScheme.ApplyDefaults()
}
