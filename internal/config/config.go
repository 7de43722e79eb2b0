// Package config loads dref settings from built-in defaults, an optional YAML
// file and DREF_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/erraggy/dref/referrors"
	"github.com/erraggy/dref/resolver"
)

const (
	// DefaultFile is read from the working directory when no file is named.
	DefaultFile = ".dref.yaml"

	// EnvPrefix marks environment variables that override file settings.
	// DREF_RESOLVER_MAX_DEPTH sets resolver.max_depth.
	EnvPrefix = "DREF_"
)

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged configuration.
type Config struct {
	Resolver ResolverConfig `koanf:"resolver"`
	Output   OutputConfig   `koanf:"output"`
	Batch    BatchConfig    `koanf:"batch"`
}

// ResolverConfig holds resolution limits and mode.
type ResolverConfig struct {
	MaxDepth    int   `koanf:"max_depth"`
	MaxFileSize int64 `koanf:"max_file_size"`
	CacheSize   int   `koanf:"cache_size"`
	// Internal also resolves "#/..." references, not only file references.
	Internal bool `koanf:"internal"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color string `koanf:"color"`
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Workers int `koanf:"workers"`
}

func defaults() map[string]any {
	return map[string]any{
		"resolver.max_depth":     resolver.DefaultMaxDepth,
		"resolver.max_file_size": resolver.DefaultMaxFileSize,
		"resolver.cache_size":    0,
		"resolver.internal":      false,
		"output.color":           ColorAuto,
		"batch.workers":          0,
	}
}

// Load builds the configuration. An empty path reads DefaultFile when it
// exists; a named path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, &referrors.ConfigError{Option: "config", Value: path, Message: "cannot parse config file", Cause: err}
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, &referrors.ConfigError{Option: "config", Value: path, Message: "cannot read config file", Cause: err}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, &referrors.ConfigError{Message: "invalid configuration", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DREF_RESOLVER_MAX_DEPTH to resolver.max_depth. Only the first
// underscore separates section from key, since keys contain underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Resolver.MaxDepth < 0 {
		return &referrors.ConfigError{Option: "resolver.max_depth", Value: c.Resolver.MaxDepth, Message: "must not be negative"}
	}
	if c.Resolver.MaxFileSize < 0 {
		return &referrors.ConfigError{Option: "resolver.max_file_size", Value: c.Resolver.MaxFileSize, Message: "must not be negative"}
	}
	if c.Resolver.CacheSize < 0 {
		return &referrors.ConfigError{Option: "resolver.cache_size", Value: c.Resolver.CacheSize, Message: "must not be negative"}
	}
	if c.Batch.Workers < 0 {
		return &referrors.ConfigError{Option: "batch.workers", Value: c.Batch.Workers, Message: "must not be negative"}
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &referrors.ConfigError{Option: "output.color", Value: c.Output.Color, Message: "must be auto, always or never"}
	}
	return nil
}

// ResolverOptions converts the resolver settings into resolver options.
func (c *Config) ResolverOptions() []resolver.Option {
	return []resolver.Option{
		resolver.WithMaxDepth(c.Resolver.MaxDepth),
		resolver.WithMaxFileSize(c.Resolver.MaxFileSize),
		resolver.WithCache(c.Resolver.CacheSize),
		resolver.WithWorkers(c.Batch.Workers),
		resolver.WithExternalOnly(!c.Resolver.Internal),
	}
}
