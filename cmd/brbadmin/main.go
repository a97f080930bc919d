// Command brbadmin is the command-line client for the BRB store admin API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/config/file"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/navigation"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/notify"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/storage/memory"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/transport"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driving/cli"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/services"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

const loginHint = "Your session has ended. Run 'brbadmin login' to sign in again."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := file.LoadDotEnv(".env"); err != nil {
		logger.Warn("%v", err)
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(file.NewEnvOverlay(configStore, nil))

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading settings: %v\n", err)
		return err
	}
	logger.SetVerbose(settings.Verbose)

	notifier := notify.NewCLI(os.Stderr, nil)

	tiers, closeTiers := openTiers(settings.Storage)
	defer closeTiers()
	credentials := services.NewCredentialStore(settings.Storage.Key, tiers...)

	navigator := navigation.NewNavigator(settings.Auth.LoginPath, loginHint, notifier)

	cfg := transport.Config{
		BaseURL: settings.API.BaseURL,
		Auth:    transport.NewAuthInterceptor(credentials, navigator, settings.Auth.LoginPath),
	}
	if settings.API.IsRateLimited() {
		cfg.RequestHooks = append(cfg.RequestHooks, transport.RateLimitHook(settings.API.RateLimit, settings.API.RateBurst))
	}
	client, err := transport.NewClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Session: services.NewSessionService(client, credentials, notifier, services.SessionConfig{
			LoginPath:  settings.API.LoginPath,
			LogoutPath: settings.API.LogoutPath,
			TokenField: settings.API.TokenField,
			Navigator:  navigator,
		}),
		Resources: services.NewResourceService(client),
		Settings:  settingsService,
		API:       client,
		Locator:   navigator,
	})

	return cli.Execute(ctx)
}

// openTiers opens the credential tiers in preference order: sqlite, token
// file, memory. A tier that fails to open is skipped with a warning; the
// memory tier always exists.
func openTiers(storage domain.StorageSettings) ([]driven.TokenTier, func()) {
	logger.Section("Credential storage")

	var tiers []driven.TokenTier
	closeAll := func() {}

	db, err := sqlite.NewStore(storage.DataDir)
	if err != nil {
		logger.Warn("durable credential storage unavailable: %v", err)
	} else {
		logger.Debug("sqlite tier at %s", db.Path())
		tiers = append(tiers, db.TokenStore())
		closeAll = func() { _ = db.Close() }
	}

	tokenDir := ""
	if storage.DataDir != "" {
		tokenDir = filepath.Join(storage.DataDir, "tokens")
	}
	files, err := file.NewTokenStore(tokenDir)
	if err != nil {
		logger.Warn("file credential storage unavailable: %v", err)
	} else {
		logger.Debug("file tier at %s", files.Dir())
		tiers = append(tiers, files)
	}

	tiers = append(tiers, memory.NewTokenStore())
	return tiers, closeAll
}
