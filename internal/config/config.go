// Package config consolidates pebble settings from defaults, an optional
// config file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"

	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

// Output formats accepted by the parse command.
const (
	OutputTree  = "tree"
	OutputSexpr = "sexpr"
	OutputJSON  = "json"
)

// Log formats accepted by the logger setup.
const (
	LogText = "text"
	LogJSON = "json"
)

// DefaultFiles are looked up in the working directory when no config file is
// given explicitly.
var DefaultFiles = []string{"pebble.toml", "pebble.yaml", "pebble.yml"}

// Config holds every user-tunable setting. Unset fields are invalid nulls so
// that layers only override what they actually specify.
type Config struct {
	Color     null.Bool   `json:"color" envconfig:"PEBBLE_COLOR"`
	Format    null.String `json:"format" envconfig:"PEBBLE_FORMAT"`
	LogFormat null.String `json:"logFormat" envconfig:"PEBBLE_LOG_FORMAT"`
	MaxErrors null.Int    `json:"maxErrors" envconfig:"PEBBLE_MAX_ERRORS"`
	Extension null.String `json:"extension" envconfig:"PEBBLE_EXTENSION"`
}

// NewConfig returns a config with the built-in defaults.
func NewConfig() Config {
	return Config{
		Color:     null.NewBool(true, false),
		Format:    null.NewString(OutputSexpr, false),
		LogFormat: null.NewString(LogText, false),
		MaxErrors: null.NewInt(0, false),
		Extension: null.NewString(".peb", false),
	}
}

// Apply copies every valid field of cfg over c.
func (c Config) Apply(cfg Config) Config {
	if cfg.Color.Valid {
		c.Color = cfg.Color
	}
	if cfg.Format.Valid {
		c.Format = cfg.Format
	}
	if cfg.LogFormat.Valid {
		c.LogFormat = cfg.LogFormat
	}
	if cfg.MaxErrors.Valid {
		c.MaxErrors = cfg.MaxErrors
	}
	if cfg.Extension.Valid {
		c.Extension = cfg.Extension
	}
	return c
}

// Validate checks the consolidated values.
func (c Config) Validate() error {
	var errs []error
	switch c.Format.String {
	case OutputTree, OutputSexpr, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q, expected one of %s, %s or %s",
			c.Format.String, OutputTree, OutputSexpr, OutputJSON))
	}
	switch c.LogFormat.String {
	case LogText, LogJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat.String))
	}
	if c.MaxErrors.Int64 < 0 {
		errs = append(errs, fmt.Errorf("max errors must not be negative, got %d", c.MaxErrors.Int64))
	}
	if !strings.HasPrefix(c.Extension.String, ".") {
		errs = append(errs, fmt.Errorf("source extension %q must start with a dot", c.Extension.String))
	}
	return errext.WithExitCodeIfNone(errors.Join(errs...), exitcodes.InvalidConfig)
}

// FileFormat is the encoding of a config file.
type FileFormat int

const (
	FormatTOML FileFormat = iota
	FormatYAML
	// FormatAuto picks the encoding from the file extension.
	FormatAuto
)

// fileConfig is the on-disk shape. Pointer fields tell absent keys apart from
// zero values.
type fileConfig struct {
	Color     *bool   `toml:"color" yaml:"color"`
	Format    *string `toml:"format" yaml:"format"`
	LogFormat *string `toml:"log_format" yaml:"log_format"`
	MaxErrors *int64  `toml:"max_errors" yaml:"max_errors"`
	Extension *string `toml:"extension" yaml:"extension"`
}

func (f fileConfig) config() Config {
	return Config{
		Color:     null.BoolFromPtr(f.Color),
		Format:    null.StringFromPtr(f.Format),
		LogFormat: null.StringFromPtr(f.LogFormat),
		MaxErrors: null.IntFromPtr(f.MaxErrors),
		Extension: null.StringFromPtr(f.Extension),
	}
}

func detectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, format FileFormat, path string) (Config, error) {
	if format == FormatAuto {
		format = detectFormat(path)
	}
	var f fileConfig
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = toml.Unmarshal(data, &f)
	}
	if err != nil {
		return Config{}, errext.WithExitCodeIfNone(
			fmt.Errorf("couldn't parse config file %q: %w", path, err), exitcodes.InvalidConfig)
	}
	return f.config(), nil
}

// ReadFile loads the config file at path from fs.
func ReadFile(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, errext.WithExitCodeIfNone(
			fmt.Errorf("couldn't read config file %q: %w", path, err), exitcodes.InvalidConfig)
	}
	return Parse(data, FormatAuto, path)
}

// FindFile returns the first of DefaultFiles present in dir, or "" when none
// exists.
func FindFile(fs afero.Fs, dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, path); ok {
			return path
		}
	}
	return ""
}

// FromEnv reads the PEBBLE_* variables from env. A set NO_COLOR disables
// colour whatever its value.
func FromEnv(env map[string]string) (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		return Config{}, errext.WithExitCodeIfNone(
			fmt.Errorf("invalid environment configuration: %w", err), exitcodes.InvalidConfig)
	}
	if _, ok := env["NO_COLOR"]; ok {
		cfg.Color = null.BoolFrom(false)
	}
	return cfg, nil
}

// Consolidate layers defaults, the config file, env and flags, in that order,
// and validates the result. An empty path searches for DefaultFiles in dir.
func Consolidate(fs afero.Fs, dir, path string, env map[string]string, flags Config) (Config, error) {
	result := NewConfig()

	if path == "" {
		path = FindFile(fs, dir)
	}
	if path != "" {
		fileCfg, err := ReadFile(fs, path)
		if err != nil {
			return Config{}, err
		}
		result = result.Apply(fileCfg)
	}

	envCfg, err := FromEnv(env)
	if err != nil {
		return Config{}, err
	}
	result = result.Apply(envCfg).Apply(flags)

	if err := result.Validate(); err != nil {
		return Config{}, err
	}
	return result, nil
}
