package widgetbot

import "errors"

// Namespace is the settings namespace every key below is read from.
const Namespace = "widgetbot"

// Settings keys consumed by the resolver.
const (
	KeyServerID                = "server_id"
	KeyChannelID               = "channel_id"
	KeyCrateColor              = "crate_color"
	KeyCrateLocationVertical   = "crate_location_vertical"
	KeyCrateLocationHorizontal = "crate_location_horizontal"
	KeyCrateNotifications      = "crate_notifications"
)

// Keys lists every setting the plugin reads, in display order.
var Keys = []string{
	KeyServerID,
	KeyChannelID,
	KeyCrateColor,
	KeyCrateLocationVertical,
	KeyCrateLocationHorizontal,
	KeyCrateNotifications,
}

const (
	defaultVertical   = "bottom"
	defaultHorizontal = "right"
)

// NotConfiguredMessage is shown wherever the server or channel is missing.
const NotConfiguredMessage = "No configuration provided. Please configure WidgetBot inside the plugins area."

// NotConfiguredCode is the machine-readable error code for a missing configuration.
const NotConfiguredCode = "WIDGETBOT_NOT_CONFIGURED"

// ErrNotConfigured is returned by Resolution.Config when no server or channel is set.
var ErrNotConfigured = errors.New("widgetbot: not configured")

// CrateOptions are passed straight through to the vendor Crate constructor.
type CrateOptions struct {
	Color         *string   `json:"color"`
	Location      [2]string `json:"location"` // [vertical, horizontal]
	Notifications bool      `json:"notifications"`
}

// WidgetConfig is the resolved, immutable plugin configuration.
// ServerID and ChannelID are always both non-empty.
type WidgetConfig struct {
	ServerID     string       `json:"server_id"`
	ChannelID    string       `json:"channel_id"`
	CrateOptions CrateOptions `json:"crate_options"`
}

// Resolution is either Configured (holding a WidgetConfig) or Unconfigured.
// The zero value is Unconfigured.
type Resolution struct {
	cfg *WidgetConfig
}

// Configured wraps cfg in a configured Resolution.
func Configured(cfg WidgetConfig) Resolution {
	return Resolution{cfg: &cfg}
}

// Unconfigured returns the Resolution for a missing configuration.
func Unconfigured() Resolution {
	return Resolution{}
}

// IsConfigured reports whether a configuration is present.
func (r Resolution) IsConfigured() bool { return r.cfg != nil }

// Config returns a copy of the configuration or ErrNotConfigured.
func (r Resolution) Config() (WidgetConfig, error) {
	if r.cfg == nil {
		return WidgetConfig{}, ErrNotConfigured
	}
	return *r.cfg, nil
}
