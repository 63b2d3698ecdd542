package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Config is the root configuration structure for Gray Logic Input.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Database DatabaseConfig  `yaml:"database"`
	Logging  LoggingConfig   `yaml:"logging"`
	Registry RegistryConfig  `yaml:"registry"`
	Profiles []ProfileConfig `yaml:"profiles"`
}

// DatabaseConfig contains SQLite database settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// RegistryConfig controls how the processor registry is populated.
type RegistryConfig struct {
	// Builtins registers the standard processors (scale, clamp, ...).
	// Default: true
	Builtins bool `yaml:"builtins"`

	// Aliases maps additional names to registered processors,
	// e.g. {deadzone: axisDeadzone}.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// ProfileConfig is a control profile seeded into the database at startup.
type ProfileConfig struct {
	// Control is the control name. Case-insensitive.
	Control string `yaml:"control"`

	// ValueType is the control's value type: axis, button, stick or vector2.
	ValueType string `yaml:"value_type"`

	// Processors is the processors string, e.g. "axisDeadzone, scale(factor=2)".
	Processors string `yaml:"processors"`

	// Description is an optional note shown in listings.
	Description string `yaml:"description,omitempty"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: INPUTCTL_SECTION_KEY
// For example: INPUTCTL_DATABASE_PATH, INPUTCTL_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults. Environment overrides are
// not applied; use LoadDefault for that.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "./data/inputctl.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Registry: RegistryConfig{
			Builtins: true,
		},
	}
}

// LoadDefault returns the defaults with environment overrides applied, for
// running without a config file.
func LoadDefault() (*Config, error) {
	cfg := Default()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Database
	if v := os.Getenv("INPUTCTL_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// Logging
	if v := os.Getenv("INPUTCTL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("INPUTCTL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	// Registry
	if v := os.Getenv("INPUTCTL_REGISTRY_BUILTINS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Registry.Builtins = b
		}
	}
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks the configuration for errors. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []string

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}
	if c.Database.BusyTimeout < 0 {
		errs = append(errs, "database.busy_timeout must not be negative")
	}

	// Logging validation
	if c.Logging.Level != "" && !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be json or text", c.Logging.Format))
	}

	// Registry validation
	for _, alias := range slices.Sorted(maps.Keys(c.Registry.Aliases)) {
		target := c.Registry.Aliases[alias]
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			errs = append(errs, fmt.Sprintf("registry.aliases[%q] = %q needs both a name and a target", alias, target))
		}
	}

	// Profile validation
	errs = append(errs, c.validateProfiles()...)

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) validateProfiles() []string {
	var errs []string
	seen := make(map[intern.Key]string, len(c.Profiles))

	for i, p := range c.Profiles {
		name := intern.Make(strings.TrimSpace(p.Control))
		if name.IsEmpty() {
			errs = append(errs, fmt.Sprintf("profiles[%d].control is required", i))
			continue
		}
		if prev, dup := seen[name.Key()]; dup {
			errs = append(errs, fmt.Sprintf("profiles[%d].control %q duplicates %q", i, p.Control, prev))
		}
		seen[name.Key()] = p.Control

		if _, err := control.ValueTypeByName(p.ValueType); err != nil {
			errs = append(errs, fmt.Sprintf("profiles[%d].value_type %q must be one of %s",
				i, p.ValueType, strings.Join(control.ValueTypeNames(), ", ")))
		}
	}
	return errs
}
