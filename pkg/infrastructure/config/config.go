package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://www.ikea.com"
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds the preferred stores and locale used for every lookup.
type Config struct {
	Stores   []int  `json:"stores" yaml:"stores"`
	Country  string `json:"country" yaml:"country"`
	Language string `json:"language" yaml:"language"`

	// Optional, overridable from the environment
	BaseURL     string `json:"baseUrl,omitempty" yaml:"base_url,omitempty"`
	HTTPTimeout string `json:"httpTimeout,omitempty" yaml:"http_timeout,omitempty"`
}

// ConfigError reports a configuration or store directory file that could not
// be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the locale defaults with no stores selected.
func DefaultConfig() *Config {
	return &Config{
		Country:  "us",
		Language: "en",
		BaseURL:  DefaultBaseURL,
	}
}

// Load reads the preferred-store config. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Environment overrides are applied
// after decoding.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read config: %w", err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse config: %w", err)}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if url := os.Getenv("STOCKCHECK_BASE_URL"); url != "" {
		c.BaseURL = url
	}
	if country := os.Getenv("STOCKCHECK_COUNTRY"); country != "" {
		c.Country = country
	}
	if language := os.Getenv("STOCKCHECK_LANGUAGE"); language != "" {
		c.Language = language
	}
	if timeout := os.Getenv("STOCKCHECK_HTTP_TIMEOUT"); timeout != "" {
		c.HTTPTimeout = timeout
	}

	if raw := os.Getenv("STOCKCHECK_STORES"); raw != "" {
		var stores []int
		for _, field := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("invalid store id in STOCKCHECK_STORES: %q", field)
			}
			stores = append(stores, id)
		}
		c.Stores = stores
	}

	return nil
}

// Validate checks that the config can drive a run.
func (c *Config) Validate() error {
	if len(c.Stores) == 0 {
		return errors.New("at least one store must be configured")
	}
	if len(c.Country) != 2 {
		return fmt.Errorf("country must be a 2-letter code, got %q", c.Country)
	}
	if len(c.Language) != 2 {
		return fmt.Errorf("language must be a 2-letter code, got %q", c.Language)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if _, err := c.parseHTTPTimeout(); err != nil {
		return err
	}
	return nil
}

// GetHTTPTimeout returns the upstream request timeout. Zero disables it.
func (c *Config) GetHTTPTimeout() time.Duration {
	d, err := c.parseHTTPTimeout()
	if err != nil {
		return DefaultHTTPTimeout
	}
	return d
}

func (c *Config) parseHTTPTimeout() (time.Duration, error) {
	if c.HTTPTimeout == "" {
		return DefaultHTTPTimeout, nil
	}
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid http timeout %q: %w", c.HTTPTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("http timeout cannot be negative, got %s", d)
	}
	return d, nil
}
