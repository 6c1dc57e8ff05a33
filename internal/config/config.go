// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads tradein settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/pelletier/go-toml/v2"
)

// DefaultCurrency prefixes every amount shown to the user.
const DefaultCurrency = "₹"

// ClientEnvVar supplies the device sniffer input when the config has none.
const ClientEnvVar = "TRADEIN_CLIENT"

// ErrInvalidConfig wraps every config problem.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the structure of config.toml.
type Config struct {
	Currency string          `toml:"currency"`
	Client   string          `toml:"client"`
	Brands   []catalog.Brand `toml:"brands"`

	catalog *catalog.Catalog
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Currency: DefaultCurrency}
}

// Load reads path. An empty path loads the default location, where a missing file means defaults.
// A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the catalog override.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse: %w", ErrInvalidConfig, err)
	}

	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = DefaultCurrency
	}

	if len(cfg.Brands) > 0 {
		cat, err := catalog.New(cfg.Brands)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		cfg.catalog = cat
	}

	return cfg, nil
}

// Catalog returns the price catalog parsed from [[brands]], or the built-in table when there is none.
func (c *Config) Catalog() *catalog.Catalog {
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}

	return c.catalog
}

// ClientStringWithEnv returns the sniffer input: the configured client, then envClient,
// the value of ClientEnvVar supplied by the caller.
func (c *Config) ClientStringWithEnv(envClient string) string {
	if c.Client != "" {
		return c.Client
	}

	return envClient
}
