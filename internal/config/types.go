package config

import "time"

// Variant selects which client injector behaviour is deployed.
type Variant string

const (
	// VariantEmbed injects a passive <widgetbot> element into a fixed container.
	VariantEmbed Variant = "embed"
	// VariantCrate constructs the vendor's floating Crate widget.
	VariantCrate Variant = "crate"
)

// LogFormat controls how log lines are written.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level configuration, corresponding to widgetbot.yml.
type Config struct {
	Server   ServerConfig                 `yaml:"server" koanf:"server"`
	Database DatabaseConfig               `yaml:"database" koanf:"database"`
	Log      LogConfig                    `yaml:"log" koanf:"log"`
	Injector InjectorConfig               `yaml:"injector" koanf:"injector"`
	Settings map[string]map[string]string `yaml:"settings,omitempty" koanf:"settings"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// DatabaseConfig locates the SQLite settings database.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// InjectorConfig controls the client injector run by `widgetbot inject`.
type InjectorConfig struct {
	Variant      Variant       `yaml:"variant" koanf:"variant"`
	ConfigURL    string        `yaml:"config_url" koanf:"config_url"`
	PollInterval time.Duration `yaml:"poll_interval" koanf:"poll_interval"`
	ReadyTimeout time.Duration `yaml:"ready_timeout" koanf:"ready_timeout"`
}
