// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads chronox configuration from TOML, YAML or
//              JSON files with environment overrides and typed access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: JSON, timezone getters, lookups through objx

/*
Package config provides configuration management for chronox.

Package: config
Title: Core Configuration Management
Description: Loads configuration files, applies dot-notation defaults and
             environment overrides, and exposes typed getters.
Author: msto63
Version: v0.2.0
Created: 2025-01-25
Modified: 2026-10-19

# Basic Configuration Loading

	cfg, err := cxconfig.Load("chronox.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	interval := cfg.GetDuration("time.chunk_interval", timex.Day)
	loc, err := cfg.GetLocation("time.timezone", nil)

# Discovery

	cfg, err := cxconfig.Discover(cxconfig.DefaultDiscoveryOptions("chronox"))

searches ./chronox.toml, ./config.toml, the user config directory and
/etc/chronox for .toml, .yaml, .yml and .json files. When nothing is found
an empty configuration with the given defaults is returned.

# Environment Variable Integration

With an EnvPrefix every key can be overridden from the environment:

	export CHRONOX_TIME_TIMEZONE="Europe/Berlin"
	export CHRONOX_TIME_CHUNK_INTERVAL="6 hours"

# Lookup Semantics

Keys are split on dots and resolved with objx.Find, so stored zero values
such as false, 0 or "" are returned instead of the getter default. Durations
accept Go syntax and phrases like "1 day"; bare numbers are seconds.

# Documents

DecodeDocument exposes the same TOML and YAML decoders for arbitrary
documents; JSON is read by the YAML decoder.
*/
package config
