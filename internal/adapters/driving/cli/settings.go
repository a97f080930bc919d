package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage client settings",
	Long: `View and change client settings stored in ~/.brbadmin/config.toml.

BRB_* environment variables (or a .env file) override stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  api.base_url       Admin API base URL
  api.login_path     Login endpoint path
  api.logout_path    Logout endpoint path
  api.token_field    JSON path of the token in the login response
  api.rate_limit     Requests per second, 0 disables
  api.rate_burst     Rate limiter burst size
  auth.login_path    Where to go when the session is lost
  storage.key        Credential storage key
  storage.data_dir   Credential storage directory
  log.verbose        Debug logging (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL:    %s\n", settings.API.BaseURL)
	cmd.Printf("  Login:       %s\n", settings.API.LoginPath)
	cmd.Printf("  Logout:      %s\n", settings.API.LogoutPath)
	cmd.Printf("  Token field: %s\n", settings.API.TokenField)
	if settings.API.IsRateLimited() {
		cmd.Printf("  Rate limit:  %g req/s (burst %d)\n", settings.API.RateLimit, settings.API.RateBurst)
	} else {
		cmd.Printf("  Rate limit:  off\n")
	}
	cmd.Println()

	cmd.Println("[Auth]")
	cmd.Printf("  Login path:  %s\n", settings.Auth.LoginPath)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Key:         %s\n", settings.Storage.Key)
	cmd.Printf("  Data dir:    %s\n", dataDirLabel(settings.Storage))
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose:     %t\n", settings.Verbose)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func dataDirLabel(s domain.StorageSettings) string {
	if s.DataDir == "" {
		return "~/.brbadmin/data (default)"
	}
	return s.DataDir
}
