// SPDX-License-Identifier: MIT

// Package config loads runtime settings from an optional YAML file with a
// FRAMEGRAPH_ environment overlay.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/framegraph/internal/logging"
	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/tfgraph"
)

// EnvPrefix marks the environment variables merged over the file.
// Nested keys use a double underscore: FRAMEGRAPH_LOG__LEVEL=debug.
const EnvPrefix = "FRAMEGRAPH_"

// LogCfg is the log section, handed to logging.Configure.
type LogCfg struct {
	Level string `koanf:"level"` // debug|info|warn|error
	JSON  bool   `koanf:"json"`
}

// MetricsCfg is the metrics section.
type MetricsCfg struct {
	Listen string `koanf:"listen"` // empty disables the HTTP listener
}

// Config is the merged file and environment configuration.
type Config struct {
	StrictCheck bool       `koanf:"strict_check"`
	Check       bool       `koanf:"check"`
	Tolerance   float64    `koanf:"tolerance"`
	Cache       bool       `koanf:"cache"`
	MaxHops     int        `koanf:"max_hops"` // 0 = unbounded
	Scene       string     `koanf:"scene"`
	Log         LogCfg     `koanf:"log"`
	Metrics     MetricsCfg `koanf:"metrics"`
}

// Load merges the YAML file at path (skipped when empty or missing) with
// FRAMEGRAPH_ env vars, env winning.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("config schema_version %q not supported (want v1)", sv)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("config decode: %w", err)
	}
	// bools default to true, so absence has to be told apart from false
	for key, dst := range map[string]*bool{
		"strict_check": &cfg.StrictCheck,
		"check":        &cfg.Check,
		"cache":        &cfg.Cache,
	} {
		if !k.Exists(key) {
			*dst = true
		}
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// envKey maps FRAMEGRAPH_LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func applyDefaults(c *Config) {
	if c.Tolerance == 0 {
		c.Tolerance = rigid.DefaultTolerance
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("config tolerance %v must not be negative", c.Tolerance)
	}
	if c.MaxHops < 0 {
		return fmt.Errorf("config max_hops %d must not be negative", c.MaxHops)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config log.level %q unknown", c.Log.Level)
	}
	return nil
}

// Default is the configuration Load returns with no file and no env.
func Default() Config {
	c := Config{StrictCheck: true, Check: true, Cache: true}
	applyDefaults(&c)
	return c
}

// GraphOptions turns c into tfgraph options.
func (c Config) GraphOptions() []tfgraph.Option {
	return []tfgraph.Option{
		tfgraph.WithStrictCheck(c.StrictCheck),
		tfgraph.WithCheck(c.Check),
		tfgraph.WithTolerance(c.Tolerance),
		tfgraph.WithCache(c.Cache),
		tfgraph.WithMaxHops(c.MaxHops),
	}
}

// LogOptions returns the logging section in the form logging.Configure takes.
func (c Config) LogOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, JSON: c.Log.JSON}
}
