// Package config loads the YAML configuration of the lvroute binary.
//
// Every field has a default (see Default); a file only needs to name what it
// changes. Unknown keys are rejected so typos surface at start-up.
//
//	map:
//	  path: data/rutland.osm.pbf
//	  road_types: [primary, secondary, residential]
//	search:
//	  default_max_cost: 20000
//	server:
//	  addr: ":8080"
//	  cors_origins: ["*"]
//	log:
//	  level: debug
//	  format: json
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/logging"
)

// ErrInvalid reports a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration.
type Config struct {
	Map    MapConfig    `yaml:"map"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// MapConfig locates the OSM extract and selects which ways become roads.
type MapConfig struct {
	Path string `yaml:"path"`
	// Format overrides extension-based detection: "xml" or "pbf".
	Format string `yaml:"format"`
	// RoadTypes replaces the default highway values when non-empty.
	RoadTypes []string `yaml:"road_types"`
	// KeepIsolated keeps nodes that no road touches.
	KeepIsolated bool `yaml:"keep_isolated"`
}

// SearchConfig holds query defaults.
type SearchConfig struct {
	// DefaultMaxCost applies to queries that name no ceiling; 0 is unbounded.
	DefaultMaxCost uint64 `yaml:"default_max_cost"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig mirrors logging.Config without the writer.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			CORSOrigins:     []string{"*"},
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	var errs []error
	if f := strings.ToLower(c.Map.Format); f != "" && f != "xml" && f != "pbf" {
		errs = append(errs, fmt.Errorf("map.format %q: want xml or pbf", c.Map.Format))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "" && f != logging.FormatText && f != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("log.format %q: want text or json", c.Log.Format))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Logging converts the log section for logging.New.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}
