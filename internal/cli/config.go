package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	defaultDimension = 2
	defaultEdges     = 4
	defaultLogLevel  = "info"
)

// ErrUnknownConfigKey indicates a config file key that Config does not define.
var ErrUnknownConfigKey = errors.New("cli: unknown config key")

// Config holds the settings shared by every command.
//
// Example file:
//
//	dimension = 3
//	edges     = 6
//	log_level = "debug"
type Config struct {
	Dimension int    `toml:"dimension"`
	Edges     int    `toml:"edges"`
	LogLevel  string `toml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Dimension: defaultDimension,
		Edges:     defaultEdges,
		LogLevel:  defaultLogLevel,
	}
}

// LoadConfig reads path on top of DefaultConfig. Keys missing from the file
// keep their default; keys Config does not know are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: %s: %w", path, strings.Join(keys, ", "), ErrUnknownConfigKey)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Level parses LogLevel; an empty string means info.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the resolved config, or DefaultConfig when the
// root command did not run.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return DefaultConfig()
}
