// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across the working
//              directory and the user and system config directories.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: XDG config directory, JSON extension, optional discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values, keys in dot notation
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations for an application:
// the working directory, the user config directory and /etc.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	paths = append(paths, filepath.Join("/etc", app))

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml", ".json"},
		EnvPrefix:  strings.ToUpper(app),
	}
}

// Discover finds and loads the first configuration file in the search
// locations. Without a match it returns an empty configuration carrying the
// defaults, or a NOT_FOUND error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(loadOptions), nil
	}

	cfg, err := LoadWithOptions(configPath, loadOptions)
	if err != nil {
		return nil, cxerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", cxerror.New("configuration file not found").
		WithCode(cxerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", strings.Join(candidates, ", "))
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"config"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml", ".json"}
	}

	var candidates []string
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}
