// Package config loads service configuration from a YAML file with
// environment variable overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// HTTPConfig holds the listener settings. Timeouts are whole seconds;
// yaml.v3 has no native duration decoding.
type HTTPConfig struct {
	Port                   int `yaml:"port"`
	RequestTimeoutSeconds  int `yaml:"request_timeout_seconds"`
	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
}

// RequestTimeout returns the per-request deadline.
func (c HTTPConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown grace period.
func (c HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RateLimitConfig shapes the shared public token bucket.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// SpannerConfig identifies the database.
type SpannerConfig struct {
	Project  string `yaml:"project"`
	Instance string `yaml:"instance"`
	Database string `yaml:"database"`
}

// InstancePath renders the Spanner instance resource name.
func (c SpannerConfig) InstancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", c.Project, c.Instance)
}

// DatabasePath renders the full Spanner database resource name.
func (c SpannerConfig) DatabasePath() string {
	return c.InstancePath() + "/databases/" + c.Database
}

// AppConfig is the whole service configuration.
type AppConfig struct {
	HTTP       HTTPConfig      `yaml:"http"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	Spanner    SpannerConfig   `yaml:"spanner"`
	AdminToken string          `yaml:"admin_token"`
}

// Load reads the YAML file, then applies environment overrides so
// secrets never have to live in the file. A missing file is fine when
// the environment carries everything.
func Load(filename string) (*AppConfig, error) {
	cfg := &AppConfig{
		HTTP: HTTPConfig{
			Port:                   8080,
			RequestTimeoutSeconds:  15,
			ShutdownTimeoutSeconds: 10,
		},
		RateLimit: RateLimitConfig{RPS: 50, Burst: 100},
	}

	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("open config: %w", err)
			}
		} else {
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Spanner.Project == "" || cfg.Spanner.Instance == "" || cfg.Spanner.Database == "" {
		return nil, fmt.Errorf("spanner project, instance and database must be configured")
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
	if v := os.Getenv("SPANNER_PROJECT"); v != "" {
		cfg.Spanner.Project = v
	}
	if v := os.Getenv("SPANNER_INSTANCE"); v != "" {
		cfg.Spanner.Instance = v
	}
	if v := os.Getenv("SPANNER_DATABASE"); v != "" {
		cfg.Spanner.Database = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.AdminToken = v
	}
}
