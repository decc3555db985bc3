package widgetbot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/widgetbot/internal/settings"
)

func store(kv map[string]string) settings.MapStore {
	return settings.MapStore{Namespace: kv}
}

func TestResolveUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]string
	}{
		{"empty", map[string]string{}},
		{"server only", map[string]string{KeyServerID: "1"}},
		{"channel only", map[string]string{KeyChannelID: "2"}},
		{"empty server", map[string]string{KeyServerID: "", KeyChannelID: "2"}},
		{"empty channel", map[string]string{KeyServerID: "1", KeyChannelID: ""}},
		{"crate options only", map[string]string{KeyCrateColor: "#fff", KeyCrateNotifications: "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResolver(store(tt.kv)).Resolve(context.Background())
			assert.False(t, res.IsConfigured())
			_, err := res.Config()
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	res := NewResolver(store(map[string]string{KeyServerID: "1", KeyChannelID: "2"})).Resolve(context.Background())
	cfg, err := res.Config()
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.ServerID)
	assert.Equal(t, "2", cfg.ChannelID)
	assert.Nil(t, cfg.CrateOptions.Color)
	assert.Equal(t, [2]string{"bottom", "right"}, cfg.CrateOptions.Location)
	assert.False(t, cfg.CrateOptions.Notifications)
}

func TestResolveCrateOptions(t *testing.T) {
	res := NewResolver(store(map[string]string{
		KeyServerID:                "1",
		KeyChannelID:               "2",
		KeyCrateColor:              "#5865F2",
		KeyCrateLocationVertical:   "top",
		KeyCrateLocationHorizontal: "left",
		KeyCrateNotifications:      "true",
	})).Resolve(context.Background())
	cfg, err := res.Config()
	require.NoError(t, err)

	require.NotNil(t, cfg.CrateOptions.Color)
	assert.Equal(t, "#5865F2", *cfg.CrateOptions.Color)
	assert.Equal(t, [2]string{"top", "left"}, cfg.CrateOptions.Location)
	assert.True(t, cfg.CrateOptions.Notifications)
}

func TestResolveNotificationsExactMatch(t *testing.T) {
	for _, v := range []string{"TRUE", "True", "1", "yes", "true ", "false", ""} {
		res := NewResolver(store(map[string]string{
			KeyServerID: "1", KeyChannelID: "2", KeyCrateNotifications: v,
		})).Resolve(context.Background())
		cfg, err := res.Config()
		require.NoError(t, err)
		assert.False(t, cfg.CrateOptions.Notifications, "crate_notifications=%q", v)
	}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("database is locked")
}

func TestResolveStoreErrorIsUnconfigured(t *testing.T) {
	res := NewResolver(brokenStore{}).Resolve(context.Background())
	assert.False(t, res.IsConfigured())

	res = NewResolver(nil).Resolve(context.Background())
	assert.False(t, res.IsConfigured())
}

func TestResolutionConfigIsCopy(t *testing.T) {
	res := Configured(WidgetConfig{ServerID: "1", ChannelID: "2"})
	cfg, _ := res.Config()
	cfg.ServerID = "mutated"

	again, _ := res.Config()
	assert.Equal(t, "1", again.ServerID)
}
