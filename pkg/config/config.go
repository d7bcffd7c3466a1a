package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL for RSS self links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Cache struct {
		DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:scout.db?cache=shared&mode=rwc,description=Cache database connection string"`
		TTL             time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=6h,description=How long cached feed entries stay fresh"`
		MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int           `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Feed cache configuration"`

	Monitor MonitorConfig `yaml:"monitor" json:"monitor" jsonschema:"description=Feed monitoring configuration"`

	TopicWeights map[string]float64 `yaml:"topic_weights" json:"topic_weights" jsonschema:"description=Relative topic importance used for scoring"`

	Sources map[string][]Source `yaml:"sources" json:"sources" jsonschema:"description=Feed sources grouped by category"`
}

// MonitorConfig holds feed monitoring settings
type MonitorConfig struct {
	Days           int           `yaml:"days" json:"days" jsonschema:"default=7,minimum=1,description=How many days back entries are considered"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum concurrent feed fetches"`
	UpdateInterval time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=Refresh interval in server mode"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=10s,description=HTTP timeout per feed fetch"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests"`
}

// Source describes a single monitored feed. Sources without a feed URL are
// kept in the config for future use but skipped by GetSources.
type Source struct {
	Name     string   `yaml:"name" json:"name" jsonschema:"required,description=Human readable source name"`
	Feed     string   `yaml:"feed" json:"feed" jsonschema:"description=Feed URL"`
	Topics   []string `yaml:"topics" json:"topics" jsonschema:"description=Topics the source covers"`
	Category string   `yaml:"-" json:"-"` // filled from the sources map key
}

// default user agent identifies the bot to feed servers
const defaultUserAgent = "Mozilla/5.0 (compatible; ScoutBot/1.0; +https://github.com/umputun/scout)"

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for cache
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = "file:scout.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 6 * time.Hour
	}
	if cfg.Cache.MaxOpenConns == 0 {
		cfg.Cache.MaxOpenConns = 10
	}
	if cfg.Cache.MaxIdleConns == 0 {
		cfg.Cache.MaxIdleConns = 5
	}
	if cfg.Cache.ConnMaxLifetime == 0 {
		cfg.Cache.ConnMaxLifetime = 3600
	}

	// set defaults for monitor
	if cfg.Monitor.Days == 0 {
		cfg.Monitor.Days = 7
	}
	if cfg.Monitor.MaxWorkers == 0 {
		cfg.Monitor.MaxWorkers = 5
	}
	if cfg.Monitor.UpdateInterval == 0 {
		cfg.Monitor.UpdateInterval = 30 * time.Minute
	}
	if cfg.Monitor.FetchTimeout == 0 {
		cfg.Monitor.FetchTimeout = 10 * time.Second
	}
	if cfg.Monitor.UserAgent == "" {
		cfg.Monitor.UserAgent = defaultUserAgent
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Fprintf(os.Stderr, "warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}

	// validate cache config
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative")
	}

	// validate monitor config
	if cfg.Monitor.Days < 1 {
		return fmt.Errorf("monitor.days must be at least 1")
	}
	if cfg.Monitor.MaxWorkers < 1 {
		return fmt.Errorf("monitor.max_workers must be at least 1")
	}
	if cfg.Monitor.FetchTimeout < time.Second {
		return fmt.Errorf("monitor.fetch_timeout must be at least 1 second")
	}

	// validate sources
	for category, sources := range cfg.Sources {
		for i, s := range sources {
			if s.Name == "" {
				return fmt.Errorf("sources.%s[%d]: name is required", category, i)
			}
		}
	}

	// validate topic weights
	for topic, weight := range cfg.TopicWeights {
		if weight < 0 {
			return fmt.Errorf("topic_weights.%s must be non-negative", topic)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used for RSS self links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetMonitorConfig returns feed monitoring configuration
func (c *Config) GetMonitorConfig() MonitorConfig {
	return c.Monitor
}

// GetTopicWeights returns topic weights used for scoring
func (c *Config) GetTopicWeights() map[string]float64 {
	return c.TopicWeights
}

// GetSources returns all sources that have a feed URL, with Category filled
// from the grouping key. Categories are ordered alphabetically so the result
// is stable between runs, order within a category follows the config file.
func (c *Config) GetSources() []Source {
	categories := make([]string, 0, len(c.Sources))
	for category := range c.Sources {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var res []Source
	for _, category := range categories {
		for _, s := range c.Sources[category] {
			if s.Feed == "" {
				continue
			}
			s.Category = category
			res = append(res, s)
		}
	}
	return res
}
