// Package config loads the client configuration from a YAML file, an
// optional .env file and COMPETENCY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hrcore/competency/internal/logging"
)

// Role is the signed-in user's role. It only gates which commands are
// offered; the API enforces access.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User is the session identity passed explicitly to services.
type User struct {
	ID   string `yaml:"id"`
	Role Role   `yaml:"role"`
}

// CanManage reports whether the user may run manager-only mutations.
func (u User) CanManage() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// Config holds all client configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Cache  CacheConfig  `yaml:"cache"`
	Import ImportConfig `yaml:"import"`
	User   User         `yaml:"user"`

	// DBPath is the local SQLite file. Empty means the XDG default.
	DBPath string `yaml:"db_path"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "pretty" or "json"
	LogFile   string `yaml:"log_file"`

	// Timezone names the location calendar days are taken in. Empty or
	// "Local" uses the system zone.
	Timezone string `yaml:"timezone"`
}

// APIConfig configures the remote API client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
	// Version is the API version this client speaks, e.g. "v1.4.0". Servers
	// reporting a different major version are rejected.
	Version string      `yaml:"version"`
	Retry   RetryConfig `yaml:"retry"`
}

// RetryConfig configures retries of idempotent requests.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// CacheConfig configures the collection client.
type CacheConfig struct {
	Retention    time.Duration `yaml:"retention"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// Persist stores fetched collections locally so the next run can show
	// them while refreshing.
	Persist bool `yaml:"persist"`
	// MaxAge drops persisted collections older than this on startup.
	MaxAge time.Duration `yaml:"max_age"`
}

// ImportConfig configures bulk question import.
type ImportConfig struct {
	Concurrency int    `yaml:"concurrency"`
	Inbox       string `yaml:"inbox"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: 15 * time.Second,
			Version: "v1.0.0",
			Retry: RetryConfig{
				MaxAttempts: 3,
				InitialWait: 500 * time.Millisecond,
				MaxWait:     5 * time.Second,
				Multiplier:  2.0,
			},
		},
		Cache: CacheConfig{
			Retention:    5 * time.Minute,
			FetchTimeout: 30 * time.Second,
			Persist:      true,
			MaxAge:       7 * 24 * time.Hour,
		},
		Import: ImportConfig{
			Concurrency: 4,
		},
		User:      User{Role: RoleEmployee},
		LogLevel:  "info",
		LogFormat: "pretty",
	}
}

// DefaultPath returns the config file location: COMPETENCY_CONFIG, else
// $XDG_CONFIG_HOME/competency/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("COMPETENCY_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "competency", "config.yaml")
}

// Load reads path over the defaults, then applies .env and environment
// overrides. A missing file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from COMPETENCY_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("COMPETENCY_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("COMPETENCY_API_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("COMPETENCY_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("COMPETENCY_API_TIMEOUT: %w", err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv("COMPETENCY_API_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("COMPETENCY_API_RETRIES: %w", err)
		}
		c.API.Retry.MaxAttempts = n
	}
	if v := os.Getenv("COMPETENCY_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("COMPETENCY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("COMPETENCY_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("COMPETENCY_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("COMPETENCY_USER_ID"); v != "" {
		c.User.ID = v
	}
	if v := os.Getenv("COMPETENCY_USER_ROLE"); v != "" {
		c.User.Role = Role(v)
	}
	if v := os.Getenv("COMPETENCY_IMPORT_INBOX"); v != "" {
		c.Import.Inbox = v
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.API.Retry.MaxAttempts < 1 {
		return fmt.Errorf("api.retry.max_attempts must be at least 1")
	}
	switch c.User.Role {
	case RoleEmployee, RoleManager, RoleAdmin:
	default:
		return fmt.Errorf("unknown user role: %q", c.User.Role)
	}
	if c.Import.Concurrency < 1 {
		return fmt.Errorf("import.concurrency must be at least 1")
	}
	switch c.LogFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
