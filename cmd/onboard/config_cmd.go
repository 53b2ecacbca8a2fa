package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/natixar/onboard/internal/config"
	"github.com/natixar/onboard/internal/ui"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the onboard config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	Long: `Write the built-in defaults to the config file given by --config, or to
$XDG_CONFIG_HOME/onboard/config.yaml. Use a .toml extension for TOML.

The API key is never written; keep it in FUSIONAUTH_API_KEY or a .env file.`,
	// Does not load the config: the target may be missing or unreadable.
	PersistentPreRunE: setupOutput,
	RunE:              runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault(configPath, forceInit)
	if err != nil {
		return err
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	return out.PrintSuccess("Config file written", []ui.Field{
		{Key: "Path", Value: path},
	}, map[string]string{"path": path})
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	source := cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	apiKey := cfg.MaskedAPIKey()
	if apiKey == "" {
		apiKey = "(not set)"
	}
	password := "(not set, users get a set-password email)"
	if cfg.InitialPassword != "" {
		password = "(set)"
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	if err := out.PrintSuccess("Effective configuration", []ui.Field{
		{Key: "Config file", Value: source},
		{Key: "Base URL", Value: cfg.BaseURL},
		{Key: "Tenant", Value: cfg.TenantID},
		{Key: "Application", Value: cfg.ApplicationID},
		{Key: "Timeout", Value: strconv.Itoa(cfg.TimeoutSeconds) + "s"},
		{Key: "Initial password", Value: password},
		{Key: "API key", Value: apiKey},
	}, map[string]interface{}{
		"config_file":          cfg.Path,
		"base_url":             cfg.BaseURL,
		"tenant_id":            cfg.TenantID,
		"application_id":       cfg.ApplicationID,
		"timeout_seconds":      cfg.TimeoutSeconds,
		"initial_password_set": cfg.InitialPassword != "",
		"api_key":              cfg.MaskedAPIKey(),
	}); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration is not usable: %w", err)
	}
	return nil
}
