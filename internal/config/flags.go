package config

// This file implements flag registration and the viper layering of config
// file, environment and flags. Negated flags (--no-color) are applied after
// layering so they always win.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GUESSIT_FORMAT.
const EnvPrefix = "GUESSIT"

// ConfigName is the config file base name searched for when --config is not
// given.
const ConfigName = "guessit"

// ErrConfigFile wraps failures reading an existing or explicitly named config
// file.
var ErrConfigFile = errors.New("config file")

// layeredKeys maps viper keys to the flag that overrides them.
var layeredKeys = []struct {
	key  string
	flag string
}{
	{"format", "format"},
	{"parallel", "parallel"},
	{"color", "color"},
	{"log_level", "log-level"},
	{"log_file", "log"},
	{"verbose", "verbose"},
}

// negatedFlags holds boolean flags that are applied after layering.
type negatedFlags struct {
	noColor bool
}

// Flags is the flag set registered by [BindFlags]. Call [Flags.Load] once
// the set has been parsed.
type Flags struct {
	fs      *pflag.FlagSet
	negated negatedFlags
}

// BindFlags registers output, display and utility flags on fs.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{fs: fs}
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f.negated)
	defineUtilityFlags(fs, cfg)
	return f
}

// defineOutputFlags registers -f/--format and --parallel.
func defineOutputFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.VarP(&formatValue{&cfg.Format}, "format", "f", "Output format: json | yaml | text")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "Run recognizers concurrently")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log, --log-level, --banner.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Colored output: auto | always | never")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (debug logging)")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug | info | warn | error")
	fs.BoolVar(&cfg.ShowBanner, "banner", false, "Print the banner before the result")
}

// defineUtilityFlags registers --config, -c/--check, -V/--version,
// --properties, --values and -P/--show-property.
func defineUtilityFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "Config file (default: ./guessit.yaml, ~/.config/guessit/guessit.yaml)")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run the recognizer self-check and exit")
	fs.BoolVarP(&cfg.ShowVersion, "version", "V", false, "Print version and exit")
	fs.BoolVar(&cfg.ListProperties, "properties", false, "List the fields that can be recognized and exit")
	fs.BoolVar(&cfg.ListValues, "values", false, "List the fields with their possible labels and exit")
	fs.StringVarP(&cfg.ShowProperty, "show-property", "P", "", "Print only the value of the named field")
}

// Load layers the config file and GUESSIT_* environment variables under the
// parsed flags and writes the result into cfg. Flags that were not set on
// the command line do not override file or env values.
func (f *Flags) Load(cfg *Config) error {
	v := viper.New()

	v.SetDefault("format", string(cfg.Format))
	v.SetDefault("parallel", cfg.Parallel)
	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("requires", cfg.Requires)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, cfg.ConfigFile); err != nil {
		return err
	}

	for _, k := range layeredKeys {
		fl := f.fs.Lookup(k.flag)
		if fl == nil || !fl.Changed {
			continue
		}
		if err := v.BindPFlag(k.key, fl); err != nil {
			return fmt.Errorf("bind flag --%s: %w", k.flag, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	applyNegatedFlags(cfg, &f.negated)
	return nil
}

// readConfigFile reads path when given, otherwise searches the default
// locations. A missing default file is not an error; a missing explicit
// file is.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
		}
		return nil
	}

	// Config type stays unset so only guessit.<ext> matches, never a bare
	// "guessit" file.
	v.SetConfigName(ConfigName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return nil
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	}
}

// ParseArgs sets Filename from the positional args. Zero args is the
// absent-input case; more than one is rejected.
func ParseArgs(args []string, cfg *Config) error {
	switch len(args) {
	case 0:
		cfg.Filename = ""
	case 1:
		cfg.Filename = args[0]
	default:
		return fmt.Errorf("expected at most one filename, got %d", len(args))
	}
	return nil
}

// pflag.Value adapters so enum types (Format, ColorMode) reject bad input at
// parse time.

type formatValue struct{ p *Format }

func (f *formatValue) String() string { return string(*f.p) }
func (f *formatValue) Type() string   { return "format" }
func (f *formatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "json":
		*f.p = FormatJSON
	case "yaml", "yml":
		*f.p = FormatYAML
	case "text":
		*f.p = FormatText
	default:
		return fmt.Errorf("invalid format %q (use 'json', 'yaml' or 'text')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
