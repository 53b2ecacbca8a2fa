// Package config builds the effective configuration of the onboard CLI.
//
// Values are layered in increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. The config file: $XDG_CONFIG_HOME/onboard/config.yaml or --config PATH.
//     YAML (.yaml, .yml) and TOML (.toml) are supported.
//  3. A .env file in the working directory
//  4. The process environment (FUSIONAUTH_API_KEY, FUSIONAUTH_BASE_URL,
//     FUSIONAUTH_TENANT_ID, FUSIONAUTH_APPLICATION_ID)
//  5. Command-line flags (Overrides)
//
// The configuration is validated once with Validate before any request is made.
//
// # Security
//
// IMPORTANT: the FusionAuth API key is NEVER written to the config file.
// It is read from the environment (or .env) on every run.
//
// # Usage Example
//
//	cfg, err := config.Load(configPath)
//	if err != nil {
//	    return err
//	}
//	cfg.Apply(config.Overrides{BaseURL: baseURL})
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
