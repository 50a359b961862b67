package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-version"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the config file base name looked up in the working directory.
const FileName = "mdbgen"

// EnvPrefix prefixes environment overrides, e.g. MDBGEN_STRICT=true.
const EnvPrefix = "MDBGEN"

// Config represents the generator configuration
type Config struct {
	OutputDir   string `mapstructure:"output_dir"`
	MDBVersion  string `mapstructure:"mdb_version"`
	StripPrefix string `mapstructure:"strip_prefix"`
	NoStrip     bool   `mapstructure:"no_strip"`
	Strict      bool   `mapstructure:"strict"`
	Delimiter   string `mapstructure:"delimiter"`
	NoColor     bool   `mapstructure:"no_color"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads mdbgen.yaml from dir (when present), then MDBGEN_* environment
// variables, then any flags in flags that were set explicitly.
// flags may be nil.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output_dir", ".")
	v.SetDefault("mdb_version", "1.0")
	v.SetDefault("strip_prefix", "")
	v.SetDefault("no_strip", false)
	v.SetDefault("strict", false)
	v.SetDefault("delimiter", ",")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindFlags binds each flag to the key of the same name with dashes
// replaced by underscores (--mdb-version -> mdb_version).
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error

	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("binding flag --%s: %w", f.Name, bindErr)
		}
	})

	return err
}

// DelimiterRune returns the field delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Prefix returns the deployment prefix to strip. An explicit strip_prefix
// wins; otherwise the deployment name is used unless stripping is disabled.
func (c *Config) Prefix(deployment string) string {
	if c.NoStrip {
		return ""
	}

	if c.StripPrefix != "" {
		return c.StripPrefix
	}

	return deployment
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := version.NewVersion(cfg.MDBVersion); err != nil {
		return fmt.Errorf("mdb_version %q is not a valid version: %w", cfg.MDBVersion, err)
	}

	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}

	switch r := cfg.DelimiterRune(); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("delimiter %q is not allowed", r)
	}

	return nil
}
