// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML/JSON parsing, defaults, environment
//              overrides, timezone and duration getters, and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: JSON, zero values, timezone getters, discovery
// - 2026-10-19 v0.2.1: LookupDuration errors, GetFloat

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("load TOML config", func(t *testing.T) {
		configPath := writeConfig(t, "chronox.toml", `
[time]
timezone = "Europe/Berlin"
chunk_interval = "6 hours"

[log]
level = "debug"
verbose = true

[output]
columns = ["start", "end", "duration"]
width = 80
`)

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if tz := cfg.GetString("time.timezone"); tz != "Europe/Berlin" {
			t.Errorf("Expected timezone 'Europe/Berlin', got '%s'", tz)
		}
		if interval := cfg.GetDuration("time.chunk_interval"); interval != 6*time.Hour {
			t.Errorf("Expected interval 6h, got %v", interval)
		}
		if width := cfg.GetInt("output.width"); width != 80 {
			t.Errorf("Expected width 80, got %d", width)
		}
		if verbose := cfg.GetBool("log.verbose"); !verbose {
			t.Errorf("Expected verbose true, got %v", verbose)
		}

		columns := cfg.GetStringSlice("output.columns")
		expected := []string{"start", "end", "duration"}
		if len(columns) != len(expected) {
			t.Fatalf("Expected %d columns, got %d", len(expected), len(columns))
		}
		for i, column := range columns {
			if column != expected[i] {
				t.Errorf("Expected column '%s', got '%s'", expected[i], column)
			}
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := writeConfig(t, "chronox.yaml", `
time:
  timezone: UTC
  chunk_interval: 1 day
log:
  level: info
`)

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Expected format YAML, got %v", cfg.Format())
		}
		if interval := cfg.GetDuration("time.chunk_interval"); interval != 24*time.Hour {
			t.Errorf("Expected interval 24h, got %v", interval)
		}
	})

	t.Run("load JSON config", func(t *testing.T) {
		configPath := writeConfig(t, "chronox.json", `{"time": {"chunk_interval": 3600}, "output": {"style": "table"}}`)

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatJSON {
			t.Errorf("Expected format JSON, got %v", cfg.Format())
		}
		if interval := cfg.GetDuration("time.chunk_interval"); interval != time.Hour {
			t.Errorf("Expected bare number as seconds (1h), got %v", interval)
		}
		if style := cfg.GetString("output.style"); style != "table" {
			t.Errorf("Expected style 'table', got '%s'", style)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
		if !cxerror.HasCode(err, cxerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !cxerror.HasCode(err, cxerror.CodeInvalidArgument) {
			t.Errorf("Expected INVALID_ARGUMENT, got %v", err)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		configPath := writeConfig(t, "broken.toml", "[time\ntimezone = ")
		_, err := Load(configPath)
		if !cxerror.HasCode(err, cxerror.CodeInvalidFormat) {
			t.Errorf("Expected INVALID_FORMAT, got %v", err)
		}
	})
}

func TestZeroValuesAreHonoured(t *testing.T) {
	cfg, err := LoadFromString(`
[log]
verbose = false
retries = 0
prefix = ""
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	if verbose := cfg.GetBool("log.verbose", true); verbose {
		t.Error("Expected stored false to win over default true")
	}
	if retries := cfg.GetInt("log.retries", 3); retries != 0 {
		t.Errorf("Expected stored 0 to win over default 3, got %d", retries)
	}
	if prefix := cfg.GetString("log.prefix", "chronox"); prefix != "" {
		t.Errorf("Expected stored empty string, got '%s'", prefix)
	}
	if !cfg.Has("log.prefix") {
		t.Error("Expected log.prefix to exist")
	}
}

func TestEnvironmentVariables(t *testing.T) {
	configPath := writeConfig(t, "chronox.toml", `
[time]
timezone = "Europe/Berlin"
chunk_interval = "1 day"
`)

	t.Setenv("CHRONOX_TIME_TIMEZONE", "Asia/Tokyo")
	t.Setenv("CHRONOX_TIME_CHUNK_INTERVAL", "2h")
	t.Setenv("TIME_TIMEZONE", "America/New_York")

	cfg, err := LoadWithOptions(configPath, LoadOptions{EnvPrefix: "chronox"})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if tz := cfg.GetString("time.timezone"); tz != "Asia/Tokyo" {
		t.Errorf("Expected timezone 'Asia/Tokyo' from env var, got '%s'", tz)
	}
	if interval := cfg.GetDuration("time.chunk_interval"); interval != 2*time.Hour {
		t.Errorf("Expected interval 2h from env var, got %v", interval)
	}
	if prefix := cfg.EnvPrefix(); prefix != "chronox" {
		t.Errorf("Expected env prefix 'chronox', got '%s'", prefix)
	}
	if key := cfg.EnvKey("time.chunk_interval"); key != "CHRONOX_TIME_CHUNK_INTERVAL" {
		t.Errorf("Expected env key CHRONOX_TIME_CHUNK_INTERVAL, got %s", key)
	}

	unprefixed, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if tz := unprefixed.GetString("time.timezone"); tz != "Europe/Berlin" {
		t.Errorf("Expected no env override without a prefix, got '%s'", tz)
	}
	if prefix := unprefixed.EnvPrefix(); prefix != "" {
		t.Errorf("Expected no env prefix, got '%s'", prefix)
	}
}

func TestGetFloat(t *testing.T) {
	cfg, err := LoadFromString(`
[output]
ratio = 0.25
width = 80
scale = "1.5"
name = "wide"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	testCases := []struct {
		key      string
		fallback float64
		want     float64
	}{
		{"output.ratio", 1, 0.25},
		{"output.width", 1, 80},
		{"output.scale", 1, 1.5},
		{"output.name", 2, 2},
		{"output.missing", 3, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			if got := cfg.GetFloat(tc.key, tc.fallback); got != tc.want {
				t.Errorf("GetFloat(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestLookupDuration(t *testing.T) {
	cfg, err := LoadFromString(`
[time]
chunk_interval = "2 days"
seconds = 90
broken = "banana"
flag = true
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	t.Run("valid values", func(t *testing.T) {
		d, ok, err := cfg.LookupDuration("time.chunk_interval")
		if err != nil || !ok || d != 48*time.Hour {
			t.Errorf("Expected 48h, got %v (set=%v, err=%v)", d, ok, err)
		}
		d, ok, err = cfg.LookupDuration("time.seconds")
		if err != nil || !ok || d != 90*time.Second {
			t.Errorf("Expected 90s, got %v (set=%v, err=%v)", d, ok, err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := cfg.LookupDuration("time.missing")
		if ok || err != nil {
			t.Errorf("Expected unset without error, got set=%v err=%v", ok, err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, key := range []string{"time.broken", "time.flag"} {
			_, ok, err := cfg.LookupDuration(key)
			if !ok {
				t.Errorf("Expected %s to be reported as set", key)
			}
			if !cxerror.HasCode(err, cxerror.CodeConfigError) {
				t.Errorf("Expected CONFIG_ERROR for %s, got %v", key, err)
			}
		}
		if d := cfg.GetDuration("time.broken", time.Minute); d != time.Minute {
			t.Errorf("Expected GetDuration to fall back to 1m, got %v", d)
		}
	})
}

func TestDefaults(t *testing.T) {
	configPath := writeConfig(t, "chronox.toml", `
[output]
style = "table"
`)

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Defaults: map[string]interface{}{
			"output.style":        "plain",
			"time.timezone":       "UTC",
			"time.chunk_interval": "1 day",
		},
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if style := cfg.GetString("output.style"); style != "table" {
		t.Errorf("Expected file value 'table' to win over default, got '%s'", style)
	}
	if tz := cfg.GetString("time.timezone"); tz != "UTC" {
		t.Errorf("Expected default timezone 'UTC', got '%s'", tz)
	}
	if interval := cfg.GetDuration("time.chunk_interval"); interval != 24*time.Hour {
		t.Errorf("Expected default interval 24h, got %v", interval)
	}
	if port := cfg.GetInt("server.port", 5432); port != 5432 {
		t.Errorf("Expected getter default 5432, got %d", port)
	}
}

func TestGetLocation(t *testing.T) {
	cfg, err := LoadFromString(`
[time]
timezone = "Europe/Berlin"
bad = "Mars/Olympus_Mons"
blank = ""
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	loc, err := cfg.GetLocation("time.timezone", nil)
	if err != nil || loc.String() != "Europe/Berlin" {
		t.Errorf("GetLocation(time.timezone) = %v, %v", loc, err)
	}

	if loc, err := cfg.GetLocation("time.missing", time.UTC); err != nil || loc != time.UTC {
		t.Errorf("Expected fallback UTC for missing key, got %v, %v", loc, err)
	}
	if loc, err := cfg.GetLocation("time.blank", nil); err != nil || loc != nil {
		t.Errorf("Expected nil fallback for blank value, got %v, %v", loc, err)
	}

	_, err = cfg.GetLocation("time.bad", nil)
	if !cxerror.HasCode(err, cxerror.CodeInvalidTimezone) {
		t.Errorf("Expected INVALID_TIMEZONE, got %v", err)
	}
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString(`
[time]
timezone = "UTC"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	if !cfg.Has("time.timezone") {
		t.Error("Expected time.timezone to exist")
	}
	if cfg.Has("time.chunk_interval") {
		t.Error("Expected time.chunk_interval to not exist")
	}
	if cfg.Has("") || cfg.Has("time.") {
		t.Error("Empty key segments must not resolve")
	}

	cfg.Set("time.chunk_interval", "3 hours")
	if interval := cfg.GetDuration("time.chunk_interval"); interval != 3*time.Hour {
		t.Errorf("Expected 3h after Set, got %v", interval)
	}

	cfg.Set("output.table.border", "rounded")
	if value := cfg.GetString("output.table.border"); value != "rounded" {
		t.Errorf("Expected nested value 'rounded', got '%s'", value)
	}
}

func TestGetAll(t *testing.T) {
	cfg, err := LoadFromString(`
[time]
timezone = "UTC"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config from string: %v", err)
	}

	all := cfg.GetAll()
	section, ok := all["time"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected time section to be a map")
	}
	section["timezone"] = "changed"

	if tz := cfg.GetString("time.timezone"); tz != "UTC" {
		t.Errorf("GetAll must return a copy, config now has '%s'", tz)
	}
}

func TestDecodeDocument(t *testing.T) {
	t.Run("JSON document", func(t *testing.T) {
		doc, err := DecodeDocument([]byte(`{"a": {"b": [1, 2]}, "flag": false}`), FormatJSON)
		if err != nil {
			t.Fatalf("DecodeDocument() error: %v", err)
		}
		root, ok := doc.(map[string]interface{})
		if !ok {
			t.Fatalf("Expected map root, got %T", doc)
		}
		inner, ok := root["a"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected nested map, got %T", root["a"])
		}
		if list, ok := inner["b"].([]interface{}); !ok || len(list) != 2 {
			t.Errorf("Expected two-element list, got %v", inner["b"])
		}
	})

	t.Run("YAML list root", func(t *testing.T) {
		doc, err := DecodeDocument([]byte("- one\n- two\n"), FormatYAML)
		if err != nil {
			t.Fatalf("DecodeDocument() error: %v", err)
		}
		if list, ok := doc.([]interface{}); !ok || len(list) != 2 {
			t.Errorf("Expected list root, got %v", doc)
		}
	})

	t.Run("TOML document", func(t *testing.T) {
		doc, err := DecodeDocument([]byte("[a]\nb = \"v\"\n"), FormatAuto)
		if err != nil {
			t.Fatalf("DecodeDocument() error: %v", err)
		}
		if _, ok := doc.(map[string]interface{}); !ok {
			t.Errorf("Expected TOML table root, got %T", doc)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := DecodeDocument([]byte("a: [unclosed"), FormatYAML)
		if !cxerror.HasCode(err, cxerror.CodeInvalidFormat) {
			t.Errorf("Expected INVALID_FORMAT, got %v", err)
		}
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"doc.json", FormatJSON},
		{"config.txt", FormatTOML}, // Default fallback
		{"config", FormatTOML},     // Default fallback
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			if format := DetectFormat(test.filename); format != test.expected {
				t.Errorf("Expected format %v for %s, got %v", test.expected, test.filename, format)
			}
		})
	}

	if f, err := ParseFormat(".yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(.yml) = %v, %v", f, err)
	}
	if _, err := ParseFormat("ini"); !cxerror.HasCode(err, cxerror.CodeInvalidArgument) {
		t.Errorf("ParseFormat(ini) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:     []string{dir},
		Filenames: []string{"chronox"},
		Defaults:  map[string]interface{}{"output.style": "plain"},
	}

	t.Run("nothing found", func(t *testing.T) {
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error: %v", err)
		}
		if cfg.FilePath() != "" {
			t.Errorf("Expected no file path, got '%s'", cfg.FilePath())
		}
		if style := cfg.GetString("output.style"); style != "plain" {
			t.Errorf("Expected default style, got '%s'", style)
		}

		required := options
		required.Required = true
		if _, err := Discover(required); !cxerror.HasCode(err, cxerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("yaml found", func(t *testing.T) {
		configPath := filepath.Join(dir, "chronox.yml")
		if err := os.WriteFile(configPath, []byte("output:\n  style: table\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error: %v", err)
		}
		if cfg.FilePath() != configPath {
			t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
		}
		if style := cfg.GetString("output.style"); style != "table" {
			t.Errorf("Expected style 'table', got '%s'", style)
		}
	})

	defaults := DefaultDiscoveryOptions("chronox")
	if defaults.EnvPrefix != "CHRONOX" || defaults.Paths[0] != "." {
		t.Errorf("Unexpected default discovery options: %+v", defaults)
	}
}

func BenchmarkGetString(b *testing.B) {
	cfg, err := LoadFromString(`
[time]
timezone = "Europe/Berlin"
`, FormatTOML)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("time.timezone")
	}
}
