// Package config loads vanta-mcp settings from the environment.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/Fuabioo/vanta-mcp/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "VANTA"

// Config holds global configuration for vanta-mcp.
type Config struct {
	ProjectID string `envconfig:"PROJECT_ID" default:"1c5a0ad2-0f18-4e8b-bd4c-88d28fff76c8"`
	APIBase   string `envconfig:"API_BASE" default:"https://api.vanta.ai/v3"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads configuration from the environment.
// When envFile is non-empty it is loaded first; variables already present
// in the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("env file %q not found: %w", envFile, err)
			}
			return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and returns an INVALID_CONFIG error for the first bad one.
func (c *Config) Validate() error {
	if _, err := uuid.Parse(c.ProjectID); err != nil {
		return errors.InvalidConfig(EnvPrefix+"_PROJECT_ID", err)
	}

	u, err := url.Parse(c.APIBase)
	if err != nil {
		return errors.InvalidConfig(EnvPrefix+"_API_BASE", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.InvalidConfig(EnvPrefix+"_API_BASE", fmt.Errorf("%q is not an absolute http(s) URL", c.APIBase))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.InvalidConfig(EnvPrefix+"_LOG_LEVEL", err)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.InvalidConfig(EnvPrefix+"_LOG_FORMAT", fmt.Errorf("%q must be \"console\" or \"json\"", c.LogFormat))
	}

	return nil
}

// ProjectURL returns the upstream base path for the configured project.
func (c *Config) ProjectURL() string {
	return strings.TrimRight(c.APIBase, "/") + "/projects/" + c.ProjectID
}
