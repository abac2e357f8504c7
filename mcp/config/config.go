package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

const (
	// EnvHost names the n8n base URL variable.
	EnvHost = "N8N_HOST"
	// EnvAPIKey names the n8n API key variable.
	EnvAPIKey = "N8N_API_KEY"
	// EnvLogLevel names the log level variable.
	EnvLogLevel = "N8N_MCP_LOG_LEVEL"

	DefaultHost     = "http://localhost:5678"
	DefaultAPIKey   = "n8n_api_key"
	DefaultLogLevel = "info"
)

// N8N holds the remote API settings.
type N8N struct {
	Host    string        `yaml:"host,omitempty" json:"host,omitempty"`
	APIKey  string        `yaml:"apiKey,omitempty" json:"-"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type Config struct {
	N8N      *N8N               `yaml:"n8n,omitempty" json:"n8n,omitempty"`
	Server   *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	LogLevel string             `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
}

// New returns a config populated with built-in defaults.
func New() *Config {
	return &Config{
		N8N:      &N8N{Host: DefaultHost, APIKey: DefaultAPIKey},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML config from any afs supported location on top of the
// built-in defaults.
func Load(ctx context.Context, URL string) (*Config, error) {
	location := URL
	if !strings.Contains(location, "://") {
		if abs, err := filepath.Abs(location); err == nil {
			location = abs
		}
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	if cfg.N8N == nil {
		cfg.N8N = New().N8N
	}
	return cfg, nil
}

// FromEnv returns the defaults overlaid with the process environment.
func FromEnv() *Config {
	cfg := New()
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// ApplyEnv overlays non-empty environment values; empty ones keep the
// current value, so an unset variable falls back to the default.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if c.N8N == nil {
		c.N8N = &N8N{}
	}
	if v, _ := lookup(EnvHost); v != "" {
		c.N8N.Host = v
	}
	if v, _ := lookup(EnvAPIKey); v != "" {
		c.N8N.APIKey = v
	}
	if v, _ := lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the n8n host and API key are set. Values sourced from
// the environment always carry defaults, so only an explicit config file or
// programmatic construction can trip it.
func (c *Config) Validate() error {
	if c.N8N == nil || c.N8N.Host == "" || c.N8N.APIKey == "" {
		return fmt.Errorf("%s and %s must be set", EnvHost, EnvAPIKey)
	}
	return nil
}
