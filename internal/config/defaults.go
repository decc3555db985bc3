package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "widgetbot.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: true,
			RequestTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "data/widgetbot.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Injector: InjectorConfig{
			Variant:      VariantEmbed,
			ConfigURL:    "http://localhost:8080/api/public/widgetbot/config",
			PollInterval: 100 * time.Millisecond,
			ReadyTimeout: 30 * time.Second,
		},
	}
}
