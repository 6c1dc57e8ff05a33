// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
)

// AppName names the config directory under XDG_CONFIG_HOME.
const AppName = "tradein"

// FileName is the config file name inside the app directory.
const FileName = "config.toml"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// DefaultPath returns $XDG_CONFIG_HOME/tradein/config.toml.
func DefaultPath() string {
	return filepath.Join(GetXDGConfigHome(), AppName, FileName)
}

// DefaultPathWithEnv returns the default config path for a given XDG_CONFIG_HOME.
func DefaultPathWithEnv(xdgConfigHome string) string {
	return filepath.Join(GetXDGConfigHomeWithEnv(xdgConfigHome), AppName, FileName)
}
