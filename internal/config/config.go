// Package config holds runtime configuration: defaults, CLI flag binding,
// config file and environment layering, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/backmassage/guessit/internal/version"
)

// ErrVersionRequirement is returned when the requires setting excludes the
// running engine version.
var ErrVersionRequirement = errors.New("version requirement not met")

// --- Enum types for validated string fields ---

// Format selects how the result record is written to stdout.
type Format string

const (
	FormatJSON Format = "json" // Flat JSON object (default).
	FormatYAML Format = "yaml" // YAML mapping in record order.
	FormatText Format = "text" // Aligned "key: value" lines for humans.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors on each stream that is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [Load] layers the config file, GUESSIT_* environment variables and
// command-line flags on top (flag > env > file > default).
type Config struct {
	// Input (positional arg). Empty means no filename was given.
	Filename string `mapstructure:"-"`

	// Output.
	Format   Format `mapstructure:"format"`   // Default: "json".
	Parallel bool   `mapstructure:"parallel"` // Run recognizers concurrently.

	// Display and logging.
	ColorMode ColorMode `mapstructure:"color"`     // Default: "auto".
	LogLevel  string    `mapstructure:"log_level"` // Default: "warn".
	LogFile   string    `mapstructure:"log_file"`  // Optional log file path, appended.
	Verbose   bool      `mapstructure:"verbose"`   // Forces debug logging.

	// Requires is a semver constraint on the engine version, e.g. ">= 1.0".
	// File and env only. Empty accepts any version.
	Requires string `mapstructure:"requires"`

	// CLI-only switches; never read from file or env.
	ConfigFile     string `mapstructure:"-"` // --config path.
	CheckOnly      bool   `mapstructure:"-"` // Run --check self-test and exit.
	ShowVersion    bool   `mapstructure:"-"`
	ShowBanner     bool   `mapstructure:"-"`
	ListProperties bool   `mapstructure:"-"` // --properties: list field names.
	ListValues     bool   `mapstructure:"-"` // --values: list field names and labels.
	ShowProperty   string `mapstructure:"-"` // -P: print one field's value only.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] applies file, env and flag overrides.
func DefaultConfig() Config {
	return Config{
		Format:    FormatJSON,
		Parallel:  false,
		ColorMode: ColorAuto,
		LogLevel:  "warn",
		Verbose:   false,
	}
}

// Validate checks that enum fields hold valid values and normalizes case.
func (c *Config) Validate() error {
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))
	if c.Format == "yml" {
		c.Format = FormatYAML
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText:
		// valid
	default:
		return fmt.Errorf("invalid format %q (use 'json', 'yaml' or 'text')", c.Format)
	}

	c.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(string(c.ColorMode))))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.LogLevel == "" {
		return errors.New("log level must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	if c.Requires != "" {
		ok, err := version.Satisfies(c.Requires)
		if err != nil {
			return fmt.Errorf("requires: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s does not satisfy %q", ErrVersionRequirement, version.String(), c.Requires)
		}
	}
	return nil
}

// EffectiveLogLevel returns the level the logger should use: debug when
// Verbose is set, LogLevel otherwise.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}
