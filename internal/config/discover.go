package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./substance.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "substance", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. SUBSTANCE_CONFIG environment variable
//  2. ./substance.toml (current directory)
//  3. $XDG_CONFIG_HOME/substance/config.toml
//  4. /etc/substance/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("SUBSTANCE_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("SUBSTANCE_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./substance.toml",
		DefaultPath(),
		"/etc/substance/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
