package widgetbot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/widgetbot/internal/settings"
)

// Resolver builds a Resolution from the settings store on every call.
type Resolver struct {
	store settings.Getter
}

// NewResolver creates a Resolver reading from store.
func NewResolver(store settings.Getter) *Resolver {
	return &Resolver{store: store}
}

// Resolve reads the plugin settings and returns the current Resolution.
// It never fails: store errors are logged and treated as unset values.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	serverID, ok := r.lookup(ctx, KeyServerID)
	if !ok {
		return Unconfigured()
	}
	channelID, ok := r.lookup(ctx, KeyChannelID)
	if !ok {
		return Unconfigured()
	}

	opts := CrateOptions{
		Location: [2]string{defaultVertical, defaultHorizontal},
	}
	if color, ok := r.lookup(ctx, KeyCrateColor); ok {
		opts.Color = &color
	}
	if v, ok := r.lookup(ctx, KeyCrateLocationVertical); ok {
		opts.Location[0] = v
	}
	if h, ok := r.lookup(ctx, KeyCrateLocationHorizontal); ok {
		opts.Location[1] = h
	}
	if n, ok := r.lookup(ctx, KeyCrateNotifications); ok {
		opts.Notifications = n == "true"
	}

	return Configured(WidgetConfig{
		ServerID:     serverID,
		ChannelID:    channelID,
		CrateOptions: opts,
	})
}

// lookup returns a setting value; empty strings count as unset.
func (r *Resolver) lookup(ctx context.Context, key string) (string, bool) {
	if r.store == nil {
		return "", false
	}
	v, ok, err := r.store.Get(ctx, Namespace, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("reading widgetbot setting")
		return "", false
	}
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
