package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "WIDGETBOT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WIDGETBOT_*). A double underscore
// separates nesting levels: WIDGETBOT_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validVariants = map[Variant]bool{
	VariantEmbed: true,
	VariantCrate: true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must be non-negative")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of console, json", c.Log.Format)
	}

	if !validVariants[c.Injector.Variant] {
		return fmt.Errorf("invalid injector.variant %q: must be one of embed, crate", c.Injector.Variant)
	}
	if c.Injector.PollInterval <= 0 {
		return fmt.Errorf("injector.poll_interval must be positive")
	}
	if c.Injector.ReadyTimeout < 0 {
		return fmt.Errorf("injector.ready_timeout must be non-negative")
	}

	return nil
}

// Setting returns the statically configured value for namespace/key.
func (c *Config) Setting(namespace, key string) (string, bool) {
	ns, ok := c.Settings[namespace]
	if !ok {
		return "", false
	}
	v, ok := ns[key]
	return v, ok
}
