package config

import (
	"time"

	"github.com/natixar/onboard/internal/logging"
)

// Built-in defaults for the Natixar FusionAuth deployment.
const (
	DefaultBaseURL        = "https://auth2.natixar.pro"
	DefaultTenantID       = "d3bd01ce-a851-9ac1-556a-250094aca2de"
	DefaultApplicationID  = "0c2707b5-a830-435a-8c4d-7234d02d6aee"
	DefaultTimeoutSeconds = 30
)

// Environment variables read by Load.
const (
	EnvAPIKey        = "FUSIONAUTH_API_KEY"
	EnvBaseURL       = "FUSIONAUTH_BASE_URL"
	EnvTenantID      = "FUSIONAUTH_TENANT_ID"
	EnvApplicationID = "FUSIONAUTH_APPLICATION_ID"
)

// Config is the effective configuration of one onboard invocation.
// It is built once at startup and passed to every operation.
type Config struct {
	BaseURL         string `yaml:"base_url" toml:"base_url" validate:"required,url"`
	TenantID        string `yaml:"tenant_id,omitempty" toml:"tenant_id,omitempty" validate:"omitempty,uuid"`
	ApplicationID   string `yaml:"application_id" toml:"application_id" validate:"required,uuid"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" toml:"timeout_seconds" validate:"gt=0"`
	InitialPassword string `yaml:"initial_password,omitempty" toml:"initial_password,omitempty"`

	// APIKey comes from the environment only and is never written to disk.
	APIKey string `yaml:"-" toml:"-" validate:"required"`

	// Path is the config file the values were read from ("" if none).
	Path string `yaml:"-" toml:"-"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		TenantID:       DefaultTenantID,
		ApplicationID:  DefaultApplicationID,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Overrides holds values supplied on the command line.
// Empty fields leave the configuration unchanged.
type Overrides struct {
	BaseURL       string
	TenantID      string
	ApplicationID string
}

// Apply layers command-line overrides on top of the configuration.
func (c *Config) Apply(o Overrides) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.TenantID != "" {
		c.TenantID = o.TenantID
	}
	if o.ApplicationID != "" {
		c.ApplicationID = o.ApplicationID
	}
}

// Timeout returns the HTTP request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MaskedAPIKey returns the API key with all but its edges hidden.
func (c *Config) MaskedAPIKey() string {
	return logging.MaskSecret(c.APIKey)
}
