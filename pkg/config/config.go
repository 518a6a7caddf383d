// Package config loads moodlog settings.
//
// Settings come from a single YAML file named by the --config flag, the
// MOODLOG_CONFIG environment variable, or the per-user default location, in
// that order. A missing file at the default location is not an error; a
// missing file that was asked for explicitly is. Selected environment
// variables override file values, and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unowned-ai/moodlog/pkg/db"
	"github.com/unowned-ai/moodlog/pkg/utils"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	EnvConfig   = "MOODLOG_CONFIG"
	EnvDB       = "MOODLOG_DB"
	EnvUser     = "MOODLOG_USER"
	EnvTimezone = "MOODLOG_TZ"
	EnvLogMode  = "MOODLOG_LOG_MODE"
	EnvHTTPAddr = "MOODLOG_HTTP_ADDR"
)

type Config struct {
	// DBPath is the SQLite file. Empty means the platform default.
	DBPath string `yaml:"db_path"`
	WAL    bool   `yaml:"wal"`
	Sync   string `yaml:"sync"`

	// LogMode is "dev" or "prod".
	LogMode string `yaml:"log_mode"`

	// User owns every record written and read by this process.
	User string `yaml:"user"`

	// Timezone is the IANA zone used to derive local calendar days
	// from mood timestamps.
	Timezone string `yaml:"timezone"`

	// RefreshInterval drives the background snapshot refresher.
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	HTTP HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() Config {
	return Config{
		WAL:             true,
		Sync:            "FULL",
		LogMode:         "dev",
		User:            "me",
		Timezone:        "Local",
		RefreshInterval: 30 * time.Second,
		HTTP: HTTPConfig{
			Addr: "127.0.0.1:8080",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
		},
	}
}

// Load reads the config file at path (see package doc for resolution),
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path == "" {
		path = utils.DefaultConfigPath()
		explicit = false
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.DBPath, EnvDB)
	overrideString(&c.User, EnvUser)
	overrideString(&c.Timezone, EnvTimezone)
	overrideString(&c.LogMode, EnvLogMode)
	overrideString(&c.HTTP.Addr, EnvHTTPAddr)
}

func overrideString(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	if !db.ValidSyncMode(c.Sync) {
		return fmt.Errorf("%w: sync must be one of OFF, NORMAL, FULL, EXTRA, got %q", ErrInvalidConfig, c.Sync)
	}
	if strings.TrimSpace(c.User) == "" {
		return fmt.Errorf("%w: user must not be empty", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh_interval must be positive, got %s", ErrInvalidConfig, c.RefreshInterval)
	}
	switch strings.ToLower(c.LogMode) {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("%w: log_mode must be dev or prod, got %q", ErrInvalidConfig, c.LogMode)
	}
	return nil
}

// Location resolves Timezone. Empty and "Local" both mean the host zone.
func (c Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}
