// Package cli provides the brbadmin command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/navigation"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driving"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Locator records the command being executed as the current location.
type Locator interface {
	SetLocation(path string)
}

// Services holds everything the commands call into.
type Services struct {
	Session   driving.SessionService
	Resources driving.ResourceService
	Settings  driving.SettingsService
	API       driven.APIClient
	Locator   Locator
}

var (
	version = "dev"
	verbose bool

	sessionService  driving.SessionService
	resourceService driving.ResourceService
	settingsService driving.SettingsService
	apiClient       driven.APIClient
	locator         Locator
)

var rootCmd = &cobra.Command{
	Use:   "brbadmin",
	Short: "Command-line client for the BRB admin API",
	Long: `brbadmin talks to the BRB store admin API on your behalf.

Sign in once with 'brbadmin login'; the credential is kept locally and sent
with every admin call until you log out or the server rejects it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
		if locator != nil {
			locator.SetLocation(navigation.LocationForCommand(cmd.CommandPath()))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	sessionService = s.Session
	resourceService = s.Resources
	settingsService = s.Settings
	apiClient = s.API
	locator = s.Locator
}

// SetVersion sets the version reported by 'brbadmin version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
