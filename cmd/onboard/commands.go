package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natixar/onboard/internal/config"
	"github.com/natixar/onboard/internal/fusionauth"
	"github.com/natixar/onboard/internal/logging"
	"github.com/natixar/onboard/internal/onboarding"
	"github.com/natixar/onboard/internal/ui"
)

// Global flags
var (
	configPath    string
	baseURL       string
	tenantID      string
	applicationID string
	outputFormat  string
	logLevel      string
)

// Effective settings, built once by setup
var (
	cfg    *config.Config
	format ui.Format
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.yaml, .yml or .toml; default $XDG_CONFIG_HOME/onboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "FusionAuth base URL (overrides config and FUSIONAUTH_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant-id", "", "FusionAuth tenant id")
	rootCmd.PersistentFlags().StringVar(&applicationID, "application-id", "", "Application whose roles and registrations are used")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); default from "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(rolesCmd)
}

// setupOutput initializes logging and the output format
func setupOutput(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}

	f, err := ui.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	format = f
	return nil
}

// setup initializes output and builds the effective configuration
func setup(cmd *cobra.Command, args []string) error {
	if err := setupOutput(cmd, args); err != nil {
		return err
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	loaded.Apply(config.Overrides{
		BaseURL:       baseURL,
		TenantID:      tenantID,
		ApplicationID: applicationID,
	})
	cfg = loaded

	logging.Debug("Configuration loaded",
		zap.String("config_file", cfg.Path),
		zap.String("base_url", cfg.BaseURL),
		zap.String("tenant_id", cfg.TenantID),
		zap.String("application_id", cfg.ApplicationID),
		zap.String("api_key", cfg.MaskedAPIKey()),
	)
	return nil
}

// newClient validates the configuration and creates a FusionAuth client
func newClient() (*fusionauth.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := fusionauth.NewClient(cfg.BaseURL, cfg.APIKey, cfg.ApplicationID)
	client.SetTenant(cfg.TenantID)
	client.SetTimeout(cfg.Timeout())
	return client, nil
}

// promptOutput keeps prompts off stdout when stdout carries JSON
func promptOutput(cmd *cobra.Command) io.Writer {
	if format == ui.FormatJSON {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// reportFailure prints an error box with FusionAuth details and
// troubleshooting tips to stderr, then returns err for the exit status.
func reportFailure(cmd *cobra.Command, title string, err error) error {
	if errors.Is(err, config.ErrMissingAPIKey) {
		return err
	}

	logging.Error(title, zap.Error(err))
	p := ui.NewPrinter(cmd.ErrOrStderr(), format)
	p.PrintError(title,
		errors.New(fusionauth.GetShortErrorMessage(err)),
		fusionauth.FormatErrorDetails(err),
		fusionauth.GetTroubleshootingHint(err),
	)
	return err
}

func targetFields() []ui.Field {
	fields := []ui.Field{{Key: "FusionAuth", Value: cfg.BaseURL}}
	if cfg.TenantID != "" {
		fields = append(fields, ui.Field{Key: "Tenant", Value: cfg.TenantID})
	}
	return append(fields, ui.Field{Key: "Application", Value: cfg.ApplicationID})
}

// groupCmd groups group subcommands
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Create and list organisation groups",
}

// Group create flags
var (
	groupName              string
	groupBlockchainAddress string
	groupEmail             string
	groupID                string
	groupRoles             []string
)

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organisation group",
	Long: `Create a FusionAuth group for an organisation.

Prompts for the group name, blockchain address and contact email, then lists
the application roles and asks which ones the group grants. Values passed as
flags are not prompted for.`,
	Example: `  # Fully interactive
  onboard group create

  # Scripted, selecting roles by name or id
  onboard group create --name "Acme" --blockchain-address 0xabc \
    --email ops@acme.example --roles admin,viewer

  # JSON output for scripting
  onboard group create --name "Acme" --blockchain-address 0xabc \
    --email ops@acme.example --roles admin --format json`,
	RunE: runGroupCreate,
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups in the tenant",
	RunE:  runGroupList,
}

func init() {
	groupCreateCmd.Flags().StringVar(&groupName, "name", "", "Group name")
	groupCreateCmd.Flags().StringVar(&groupBlockchainAddress, "blockchain-address", "", "Organisation blockchain address")
	groupCreateCmd.Flags().StringVar(&groupEmail, "email", "", "Organisation contact email")
	groupCreateCmd.Flags().StringVar(&groupID, "id", "", "Group id (generated by FusionAuth when empty)")
	groupCreateCmd.Flags().StringSliceVar(&groupRoles, "roles", nil, "Role ids or names to grant (skips the role prompt)")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupListCmd)
}

func runGroupCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	out.PrintHeader("Create group", "onboard group create", targetFields()...)

	flow := onboarding.NewFlow(cfg, client, ui.NewPrompter(cmd.InOrStdin(), promptOutput(cmd)), nil)
	group, err := flow.CreateGroup(cmd.Context(), onboarding.GroupInput{
		Name:              groupName,
		BlockchainAddress: groupBlockchainAddress,
		Email:             groupEmail,
		GroupID:           groupID,
		// Scripted runs pass --name; only ask for an id interactively
		PromptGroupID: !cmd.Flags().Changed("id") && groupName == "",
		Roles:         groupRoles,
	})
	if err != nil {
		return reportFailure(cmd, "Group creation failed", err)
	}

	return out.PrintSuccess("Group created", []ui.Field{
		{Key: "ID", Value: group.ID},
		{Key: "Name", Value: group.Name},
		{Key: "Blockchain", Value: group.Data.BlockchainAddress},
		{Key: "Email", Value: group.Data.Email},
		{Key: "Roles", Value: strings.Join(group.RoleNames(), ", ")},
	}, group)
}

func runGroupList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	groups, err := client.FetchGroups(cmd.Context())
	if err != nil {
		return reportFailure(cmd, "Failed to retrieve groups", err)
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	if len(groups) == 0 && !out.JSON() {
		out.Println("No groups found.")
		return nil
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.ID, g.Name, g.Data.Email, g.Data.BlockchainAddress, strings.Join(g.RoleNames(), ", ")})
	}
	return out.PrintTable([]string{"ID", "Name", "Email", "Blockchain Address", "Roles"}, rows, groups)
}

// userCmd groups user subcommands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Create users",
}

// User create flags
var (
	userEmail     string
	userFirstName string
	userLastName  string
	userGroup     string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user in an organisation group",
	Long: `Create a FusionAuth user registered to the onboarding application.

Prompts for the user's email, first name and last name, then opens an
interactive selector to pick the group. Type to filter groups by name,
use the arrow keys to move, Enter to select and Esc to cancel.

When no initial password is configured FusionAuth emails the user a link
to set one.`,
	Example: `  # Fully interactive
  onboard user create

  # Scripted, group by name or id
  onboard user create --email jane@acme.example --first-name Jane \
    --last-name Doe --group "Acme"`,
	RunE: runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "User email")
	userCreateCmd.Flags().StringVar(&userFirstName, "first-name", "", "User first name")
	userCreateCmd.Flags().StringVar(&userLastName, "last-name", "", "User last name")
	userCreateCmd.Flags().StringVar(&userGroup, "group", "", "Group id or name (skips the group selector)")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	out.PrintHeader("Create user", "onboard user create", targetFields()...)

	prompter := ui.NewPrompter(cmd.InOrStdin(), promptOutput(cmd))
	picker := &onboarding.SelectorPicker{
		Title:  "Select a group for the user:",
		Input:  prompter.Reader(),
		Output: promptOutput(cmd),
	}
	flow := onboarding.NewFlow(cfg, client, prompter, picker)

	resp, err := flow.CreateUser(cmd.Context(), onboarding.UserInput{
		Email:     userEmail,
		FirstName: userFirstName,
		LastName:  userLastName,
		Group:     userGroup,
	})
	if err != nil {
		return reportFailure(cmd, "User creation failed", err)
	}

	password := "set-password email sent"
	if cfg.InitialPassword != "" {
		password = "initial password from config"
	}

	return out.PrintSuccess("User created", []ui.Field{
		{Key: "ID", Value: resp.User.ID},
		{Key: "Email", Value: resp.User.Email},
		{Key: "Name", Value: strings.TrimSpace(resp.User.FirstName + " " + resp.User.LastName)},
		{Key: "Application", Value: resp.Registration.ApplicationID},
		{Key: "Password", Value: password},
	}, resp)
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles of the onboarding application",
	RunE:  runRoles,
}

func runRoles(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	roles, err := client.FetchRoles(cmd.Context())
	if err != nil {
		return reportFailure(cmd, "Failed to retrieve roles", err)
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), format)
	if len(roles) == 0 && !out.JSON() {
		out.Println("No roles found for the application.")
		return nil
	}

	rows := make([][]string, 0, len(roles))
	for i, r := range roles {
		rows = append(rows, []string{strconv.Itoa(i + 1), r.ID, r.Name, strconv.FormatBool(r.IsDefault), r.Description})
	}
	return out.PrintTable([]string{"#", "ID", "Name", "Default", "Description"}, rows, roles)
}
