// SPDX-License-Identifier: MIT

// Package config loads graphd settings from layered sources.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "graphd.toml"

// EnvPrefix prefixes environment overrides (GRAPHD_SERVER_ADDR -> server.addr).
const EnvPrefix = "GRAPHD_"

// ErrInvalid is returned when a loaded value fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings of the graphd service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
	Snapshot SnapshotConfig `koanf:"snapshot"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Trace    TraceConfig    `koanf:"trace"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr     string        `koanf:"addr"`
	Mode     string        `koanf:"mode"` // gin mode: debug, release or test
	Shutdown time.Duration `koanf:"shutdown"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text, json or logfmt
}

// SnapshotConfig locates the registry snapshot. An empty path disables it.
type SnapshotConfig struct {
	Path string `koanf:"path"`
	Save bool   `koanf:"save"` // write on shutdown
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// TraceConfig toggles OpenTelemetry request spans. With an empty Endpoint
// spans are created but not exported.
type TraceConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"` // OTLP gRPC collector, host:port
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"addr":       "server.addr",
	"mode":       "server.mode",
	"shutdown":   "server.shutdown",
	"log-level":  "log.level",
	"log-format": "log.format",
	"snapshot":   "snapshot.path",
	"save":       "snapshot.save",
	"metrics":    "metrics.enabled",
	"trace":      "trace.enabled",
	"otlp":       "trace.endpoint",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"addr":     ":8080",
			"mode":     "release",
			"shutdown": "10s",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
		"snapshot": map[string]interface{}{
			"path": "",
			"save": true,
		},
		"metrics": map[string]interface{}{"enabled": true},
		"trace": map[string]interface{}{
			"enabled":  true,
			"endpoint": "",
		},
	}
}

// RegisterFlags adds the service flags to f. Flags override every other
// source, but only when set explicitly.
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "path to a TOML config file (default ./"+DefaultFile+" if present)")
	f.String("addr", ":8080", "HTTP listen address")
	f.String("mode", "release", "gin mode: debug, release or test")
	f.Duration("shutdown", 10*time.Second, "graceful shutdown timeout")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("snapshot", "", "snapshot file (.json, .yaml or .yml); empty disables snapshots")
	f.Bool("save", true, "save the snapshot on shutdown")
	f.Bool("metrics", true, "serve Prometheus metrics on /metrics")
	f.Bool("trace", true, "record OpenTelemetry request spans")
	f.String("otlp", "", "OTLP gRPC collector endpoint (host:port) for exporting spans")
}

// Load merges configuration from defaults, config file, environment
// variables, and flags.
// Priority: Flags > Env > Config File > Defaults
//
// The config file is the --config flag when set, else DefaultFile if it
// exists. A --verbose flag set to true forces log.level=debug.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, explicit := configPath(f)
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, flagKey(f)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that the type system cannot.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode %q", ErrInvalid, c.Server.Mode)
	}
	if c.Server.Shutdown <= 0 {
		return fmt.Errorf("%w: server.shutdown must be positive, got %s", ErrInvalid, c.Server.Shutdown)
	}
	return nil
}

func configPath(f *pflag.FlagSet) (string, bool) {
	if f != nil {
		if fl := f.Lookup("config"); fl != nil && fl.Value.String() != "" {
			return fl.Value.String(), true
		}
	}
	return DefaultFile, false
}

// flagKey renames known flags to their config keys and drops the rest.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if f.Name == "verbose" {
			if v, ok := posflag.FlagVal(fs, f).(bool); ok && v {
				return "log.level", "debug"
			}
			return "", nil
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
