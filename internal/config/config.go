// Package config resolves the configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"vibelist/internal/store"
)

const (
	// AppName is the application directory name.
	AppName = "vibelist"

	// ConfigFile is the optional configuration filename inside Dir.
	ConfigFile = "config.yaml"

	// SQLiteFile is the database filename used by the sqlite backend.
	SQLiteFile = "vibelist.db"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataDir holds the stored task list. Defaults to Dir.
	DataDir string

	// Backend selects the storage backend: file, sqlite or memory.
	Backend string

	// StorageKey is the key the task list is stored under.
	StorageKey string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the layout of config.yaml.
type fileConfig struct {
	Backend    string `yaml:"backend"`
	StorageKey string `yaml:"storage_key"`
	DataDir    string `yaml:"data_dir"`
}

// envConfig lists the environment overrides.
type envConfig struct {
	Dir        string `env:"VIBELIST_CONFIG_DIR"`
	DataDir    string `env:"VIBELIST_DATA_DIR"`
	Backend    string `env:"VIBELIST_BACKEND"`
	StorageKey string `env:"VIBELIST_STORAGE_KEY"`
	Debug      bool   `env:"VIBELIST_DEBUG"`
}

// New creates a Config. Values are layered: defaults, then config.yaml, then
// environment. If configDir is non-empty it takes precedence over
// VIBELIST_CONFIG_DIR and the XDG default.
func New(configDir string) (*Config, error) {
	var ev envConfig
	if err := env.Parse(&ev); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	dir := configDir
	if dir == "" {
		dir = ev.Dir
	}
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:        dir,
		Backend:    BackendFile,
		StorageKey: store.DefaultKey,
	}

	fc, err := readFile(cfg.ConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.apply(fc.Backend, fc.StorageKey, fc.DataDir)
	cfg.apply(ev.Backend, ev.StorageKey, ev.DataDir)
	if ev.Debug {
		cfg.Debug = true
	}

	if cfg.DataDir == "" {
		cfg.DataDir = cfg.Dir
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(backend, key, dataDir string) {
	if v := strings.TrimSpace(backend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(key); v != "" {
		c.StorageKey = v
	}
	if v := strings.TrimSpace(dataDir); v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(c.Dir, v)
		}
		c.DataDir = v
	}
}

// readFile loads config.yaml. A missing file yields the zero fileConfig.
func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// SetBackend overrides the backend, e.g. from a command-line flag.
func (c *Config) SetBackend(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	c.Backend = strings.ToLower(strings.TrimSpace(name))
	return c.Validate()
}

// Validate checks the backend name and storage key.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	return store.ValidateKey(c.StorageKey)
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SQLitePath returns the path to the sqlite database.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, SQLiteFile)
}

// EnsureDataDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o700)
}
