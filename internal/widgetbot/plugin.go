package widgetbot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/widgetbot/internal/db"
	"github.com/ziadkadry99/widgetbot/internal/settings"
)

// Plugin implements the host panel's install/update/uninstall hooks.
type Plugin struct {
	db    *db.DB
	store *settings.Store
}

// NewPlugin creates the lifecycle hooks for the given database.
func NewPlugin(database *db.DB) *Plugin {
	return &Plugin{db: database, store: settings.NewStore(database)}
}

// Install prepares storage for the plugin's settings.
func (p *Plugin) Install(ctx context.Context) error {
	if err := p.db.Migrate(); err != nil {
		return fmt.Errorf("installing widgetbot: %w", err)
	}
	zerolog.Ctx(ctx).Info().Msg("widgetbot plugin installed")
	return nil
}

// Update runs when the plugin moves between versions. Settings carry over unchanged.
func (p *Plugin) Update(ctx context.Context, oldVersion, newVersion string) error {
	if err := p.db.Migrate(); err != nil {
		return fmt.Errorf("updating widgetbot: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("from", oldVersion).Str("to", newVersion).Msg("widgetbot plugin updated")
	return nil
}

// Uninstall removes every setting in the widgetbot namespace.
func (p *Plugin) Uninstall(ctx context.Context) error {
	n, err := p.store.DeleteNamespace(ctx, Namespace)
	if err != nil {
		return fmt.Errorf("uninstalling widgetbot: %w", err)
	}
	zerolog.Ctx(ctx).Info().Int64("settings_removed", n).Msg("widgetbot plugin uninstalled")
	return nil
}
