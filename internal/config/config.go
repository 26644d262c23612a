// Package config loads user defaults for lice from an optional TOML
// file in the XDG config directory.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/wellmaintained/lice/internal/errors"
)

// configFile is the config path relative to the XDG config root,
// typically ~/.config/lice/config.toml.
const configFile = "lice/config.toml"

// Config holds invocation defaults. Every field is optional; explicit
// flags always win over config values.
type Config struct {
	// Organization overrides the version-control / OS user guess.
	Organization string `toml:"organization"`
	// License replaces the built-in default license.
	License string `toml:"license"`
	// Language replaces the built-in plain text language tag.
	Language string `toml:"language"`
}

// Load reads the user config file if one exists. A missing file is
// normal and yields an empty Config; an unparsable file is a
// ConfigurationError.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses the config file at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRuntimeError(
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("invalid config file %s", path), err)
	}
	return &cfg, nil
}
