// Package config provides unified configuration loading for tendril.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/internal/runtime"
	"github.com/aretw0/tendril/pkg/domain"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "tendril.yaml"

// Config contains all tendril configuration settings.
type Config struct {
	// Library is the directory holding machine definition files.
	Library string `json:"library" yaml:"library"`

	// Simulation contains the engine defaults applied when a request leaves
	// them unset.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Store selects and configures the run store backend.
	Store StoreConfig `json:"store" yaml:"store"`

	// HTTP contains settings for the API server.
	HTTP HTTPConfig `json:"http" yaml:"http"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures the exploration engine.
type SimulationConfig struct {
	// MaxDepth is the hard ceiling on exploration levels.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// Mode selects how terminal states end a run: "eager" or "exhaustive".
	Mode string `json:"mode" yaml:"mode"`

	// Metric selects the branching formula recorded on results:
	// "state_diversity" or "per_level_branching".
	Metric string `json:"metric" yaml:"metric"`
}

// StoreConfig selects where finished runs are persisted.
type StoreConfig struct {
	// Backend identifies the run store: "memory" (default), "redis", or
	// "sqlite".
	Backend string `json:"backend" yaml:"backend"`

	// Redis configures the redis backend.
	Redis RedisConfig `json:"redis" yaml:"redis"`

	// SQLite configures the sqlite backend.
	SQLite SQLiteConfig `json:"sqlite" yaml:"sqlite"`
}

// RedisConfig configures the redis-backed run store.
type RedisConfig struct {
	// Addr is the host:port of the redis server.
	Addr string `json:"addr" yaml:"addr"`

	// Password is the redis AUTH password, empty for none.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// DB is the redis database number.
	DB int `json:"db" yaml:"db"`

	// Prefix namespaces every key written by the store.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// TTL is how long stored runs live, as a Go duration string such as
	// "1h" or "30m". Empty keeps them forever.
	TTL string `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// ParseTTL converts the TTL string into a duration. Empty means zero: no
// expiration.
func (c RedisConfig) ParseTTL() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("ttl must be non-negative, got %v", d)
	}
	return d, nil
}

// RedactedPassword masks the redis password for logs.
func (c RedisConfig) RedactedPassword() string {
	if c.Password == "" {
		return ""
	}
	return "(set)"
}

// String implements fmt.Stringer to prevent accidental password logging.
func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Addr:%s, DB:%d, Password:%s}", c.Addr, c.DB, c.RedactedPassword())
}

// SQLiteConfig configures the sqlite-backed run store.
type SQLiteConfig struct {
	// Path is the database file location.
	Path string `json:"path" yaml:"path"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	// Addr is the listen address, host:port.
	Addr string `json:"addr" yaml:"addr"`
}

// LoggingConfig configures tendril's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", "trace",
	// "warn", or "error".
	Level string `json:"level" yaml:"level"`

	// Format selects the handler: "text" (default) or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Library: "machines",
		Simulation: SimulationConfig{
			MaxDepth: runtime.DefaultMaxDepth,
			Mode:     string(domain.DefaultTerminationMode),
			Metric:   string(domain.DefaultMetricKind),
		},
		Store: StoreConfig{
			Backend: "memory",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "tendril:run:",
			},
			SQLite: SQLiteConfig{
				Path: "tendril.db",
			},
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ./tendril.yaml -> environment variables.
func Load() (*Config, error) {
	config := Default()

	if _, statErr := os.Stat(DefaultFile); statErr == nil {
		fileConfig, loadErr := LoadFromFile(DefaultFile)
		if loadErr != nil {
			return nil, fmt.Errorf("loading config file: %w", loadErr)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.Simulation.MaxDepth)
	}

	if _, err := domain.ParseTerminationMode(c.Simulation.Mode); err != nil {
		return fmt.Errorf("invalid mode: %w", err)
	}

	if _, err := domain.ParseMetricKind(c.Simulation.Metric); err != nil {
		return fmt.Errorf("invalid metric: %w", err)
	}

	validBackends := map[string]bool{"": true, "memory": true, "redis": true, "sqlite": true}
	if !validBackends[c.Store.Backend] {
		return fmt.Errorf("invalid store backend: %s (valid: memory, redis, sqlite)", c.Store.Backend)
	}

	if _, err := c.Store.Redis.ParseTTL(); err != nil {
		return fmt.Errorf("invalid redis ttl: %w", err)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	validFormats := map[string]bool{"": true, "text": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Logging.Format)
	}

	return nil
}

// Logger builds the slog logger the configuration describes.
func (c *Config) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	if c.Logging.Format == "json" {
		return logging.NewJSON(level), nil
	}
	return logging.New(level), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TENDRIL_LIBRARY"); v != "" {
		config.Library = v
	}

	if v := os.Getenv("TENDRIL_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.MaxDepth = n
		}
	}
	if v := os.Getenv("TENDRIL_MODE"); v != "" {
		config.Simulation.Mode = v
	}
	if v := os.Getenv("TENDRIL_METRIC"); v != "" {
		config.Simulation.Metric = v
	}

	if v := os.Getenv("TENDRIL_STORE_BACKEND"); v != "" {
		config.Store.Backend = v
	}
	if v := os.Getenv("TENDRIL_REDIS_ADDR"); v != "" {
		config.Store.Redis.Addr = v
	}
	if v := os.Getenv("TENDRIL_REDIS_PASSWORD"); v != "" {
		config.Store.Redis.Password = v
	}
	if v := os.Getenv("TENDRIL_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Store.Redis.DB = n
		}
	}
	if v := os.Getenv("TENDRIL_REDIS_TTL"); v != "" {
		config.Store.Redis.TTL = v
	}
	if v := os.Getenv("TENDRIL_SQLITE_PATH"); v != "" {
		config.Store.SQLite.Path = v
	}

	if v := os.Getenv("TENDRIL_HTTP_ADDR"); v != "" {
		config.HTTP.Addr = v
	}

	if v := os.Getenv("TENDRIL_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("TENDRIL_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}
}
