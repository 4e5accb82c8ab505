// Package config holds the settings for a single treewalker run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/simonhull/firebird-suite/treewalker/internal/output"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys shared by the config file and viper.
const (
	KeyIgnoreHidden = "ignore_hidden"
	KeyColor        = "color"
	KeyVerbose      = "verbose"
)

// flagNames maps config keys to the command-line flags that override them.
var flagNames = map[string]string{
	KeyIgnoreHidden: "ignore-hidden",
	KeyColor:        "color",
	KeyVerbose:      "verbose",
}

// Config is the configuration for one render. It is built once and not
// modified afterwards.
type Config struct {
	// Path is the directory to render, exactly as given on the command line.
	Path         string `yaml:"-"`
	IgnoreHidden bool   `yaml:"ignore_hidden"`
	Color        string `yaml:"color"`
	Verbose      bool   `yaml:"verbose"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Color: output.ColorAuto,
	}
}

// Load reads defaults from a YAML file. An empty path returns Default().
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	if !slices.Contains(output.ColorModes, c.Color) {
		return fmt.Errorf("invalid color mode %q (want one of: %s)", c.Color, strings.Join(output.ColorModes, ", "))
	}
	return nil
}

// Resolve merges file defaults with command-line flags. Flags that were set
// explicitly win over the file; unset flags fall back to it.
func Resolve(v *viper.Viper, flags *pflag.FlagSet, file *Config, path string) (*Config, error) {
	v.SetDefault(KeyIgnoreHidden, file.IgnoreHidden)
	v.SetDefault(KeyColor, file.Color)
	v.SetDefault(KeyVerbose, file.Verbose)

	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	cfg := &Config{
		Path:         path,
		IgnoreHidden: v.GetBool(KeyIgnoreHidden),
		Color:        v.GetString(KeyColor),
		Verbose:      v.GetBool(KeyVerbose),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
