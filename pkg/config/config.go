/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package config loads xdrgen settings from an optional xdrgen.yaml and
// XDRGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/voedger/xdrgen/pkg/logger"
	"github.com/voedger/xdrgen/pkg/schema"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// Sentinel validation errors
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidPrimitive = errors.New("type map overrides unknown primitive")
)

const (
	ConfigName = "xdrgen"
	EnvPrefix  = "XDRGEN"
)

// Default configuration values
const (
	DefaultTarget   = "go"
	DefaultFormat   = "text"
	DefaultLogLevel = "info"
)

type Config struct {
	// Target is the renderer used by `gen`
	Target string `mapstructure:"target"`
	// Output is the output file, stdout if empty
	Output string `mapstructure:"output"`
	// Format of `schema` and `parse` output
	Format    string   `mapstructure:"format"`
	GoPackage string   `mapstructure:"go_package"`
	Header    string   `mapstructure:"header"`
	Tables    []string `mapstructure:"tables"`
	AllTables bool     `mapstructure:"all_tables"`
	LogLevel  string   `mapstructure:"log_level"`
	// TypeMaps overrides primitive spellings: target → primitive → spelling
	TypeMaps map[string]map[string]string `mapstructure:"type_maps"`
}

// Load reads configPath, or xdrgen.yaml from the working directory if
// configPath is empty. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(ConfigName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Verbose("no config file found, using defaults")
	} else {
		logger.Verbose("using config file", viperCfg.ConfigFileUsed())
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Target:   DefaultTarget,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

func setDefaults(viperCfg *viper.Viper) {
	d := Default()
	viperCfg.SetDefault("target", d.Target)
	viperCfg.SetDefault("output", "")
	viperCfg.SetDefault("format", d.Format)
	viperCfg.SetDefault("go_package", "")
	viperCfg.SetDefault("header", "")
	viperCfg.SetDefault("tables", []string{})
	viperCfg.SetDefault("all_tables", false)
	viperCfg.SetDefault("log_level", d.LogLevel)
}

func validateConfig(cfg *Config) error {
	if formats := schema.Formats(); !slices.Contains(formats, schema.Format(cfg.Format)) {
		return fmt.Errorf("%w: %q, expected one of: %v", ErrInvalidFormat, cfg.Format, formats)
	}

	if _, err := logger.ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	var errs []error
	for target, m := range cfg.TypeMaps {
		for primitive := range m {
			if !xdrdef.IsPrimitive(primitive) {
				errs = append(errs, fmt.Errorf("%w: %s.%q", ErrInvalidPrimitive, target, primitive))
			}
		}
	}
	return errors.Join(errs...)
}

// TypeMap returns overrides of the target, nil if none
func (c *Config) TypeMap(target string) map[string]string {
	return c.TypeMaps[target]
}

// ApplyLogLevel sets the logger level from LogLevel
func (c *Config) ApplyLogLevel() error {
	level, err := logger.ParseLogLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	logger.SetLogLevel(level)
	return nil
}
