package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/widgetbot/internal/config"
	"github.com/ziadkadry99/widgetbot/internal/db"
	"github.com/ziadkadry99/widgetbot/internal/logging"
	"github.com/ziadkadry99/widgetbot/internal/settings"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setupLogger installs the global logger; --verbose forces debug level.
func setupLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.Setup(level, string(cfg.Log.Format), os.Stderr)
}

// openSettings opens the settings database named in cfg.
func openSettings(cfg *config.Config) (*db.DB, *settings.Store, error) {
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, settings.NewStore(database), nil
}

// settingsSource layers the database over the settings given in the config file.
func settingsSource(cfg *config.Config, store *settings.Store) settings.Getter {
	return settings.Chain{store, settings.MapStore(cfg.Settings)}
}
