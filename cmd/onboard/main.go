// Onboard is an operator tool for onboarding organisations and their users
// into a FusionAuth identity provider.
//
// It creates organisation groups with application roles and creates users
// registered to the onboarding application as members of a chosen group.
// Groups are picked with an interactive, incrementally filtered selector.
//
// Usage:
//
//	onboard [command] [flags]
//
// The FusionAuth API key is read from FUSIONAUTH_API_KEY (or a .env file).
// See 'onboard --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/natixar/onboard/internal/logging"
	"github.com/natixar/onboard/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "FusionAuth onboarding utility",
	Long: `Onboard organisations and users into FusionAuth.

Creates organisation groups with application roles, and users registered
to the onboarding application as members of a group.

The API key is read from the FUSIONAUTH_API_KEY environment variable or
from a .env file in the working directory. It is never stored in the
config file.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String("onboard"))
	},
}
