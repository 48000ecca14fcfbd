// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading TOML, YAML and JSON
//              configuration with environment overrides and dot-notation access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: JSON documents, lookups through objx.Find, timezone and
//                      duration phrase getters; dropped hot-reloading

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/foundation/utils/objx"
	"github.com/msto63/chronox/foundation/utils/timex"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatJSON represents JSON format, decoded by the YAML parser
	FormatJSON

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name or file extension into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "", "auto":
		return FormatAuto, nil
	}
	return FormatAuto, cxerror.Newf("unknown config format %q", name).
		WithCode(cxerror.CodeInvalidArgument).
		WithOperation("config.ParseFormat").
		WithDetail("format", name)
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, keys in dot notation
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, cxerror.New("config file path cannot be empty").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := cxerror.CodeConfigError
		if os.IsNotExist(err) {
			code = cxerror.CodeNotFound
		}
		return nil, cxerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, cxerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, cxerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration without file content. Defaults and
// environment overrides still apply.
func Empty(options LoadOptions) *Config {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}
	return &Config{
		data:      mergeDefaults(nil, options.Defaults),
		format:    format,
		envPrefix: options.EnvPrefix,
	}
}

// DecodeDocument parses a TOML, YAML or JSON document into generic maps and
// slices. Unlike configuration content, a YAML or JSON document may have any
// value at its root.
func DecodeDocument(content []byte, format Format) (interface{}, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	var doc interface{}
	var err error

	switch format {
	case FormatTOML:
		var table map[string]interface{}
		err = toml.Unmarshal(content, &table)
		doc = table
	case FormatYAML, FormatJSON:
		err = yaml.Unmarshal(content, &doc)
	default:
		return nil, unsupportedFormat(format, "config.DecodeDocument")
	}

	if err != nil {
		return nil, cxerror.Wrap(err, strings.ToUpper(format.String())+" parse error").
			WithCode(cxerror.CodeInvalidFormat).
			WithOperation("config.DecodeDocument")
	}
	return doc, nil
}

// DetectFormat determines the document format from a file extension, falling
// back to TOML
func DetectFormat(filePath string) Format {
	return detectFormat(filePath)
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content, which must be a table at its root
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, cxerror.Wrap(err, "TOML parse error").
				WithCode(cxerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML, FormatJSON:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, cxerror.Wrap(err, strings.ToUpper(format.String())+" parse error").
				WithCode(cxerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	default:
		return nil, unsupportedFormat(format, "config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

func unsupportedFormat(format Format, operation string) error {
	return cxerror.New(fmt.Sprintf("unsupported format: %s", format)).
		WithCode(cxerror.CodeInvalidArgument).
		WithOperation(operation).
		WithDetail("format", format.String())
}

// mergeDefaults fills dot-notation defaults into data where no value is set
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = make(map[string]interface{})
	}
	for key, value := range defaults {
		if _, found, err := objx.Find(data, splitKey(key)...); err == nil && !found {
			setNestedValue(data, key, value)
		}
	}
	return data
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := splitKey(key)
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

func splitKey(key string) []string {
	return strings.Split(key, ".")
}

// Get returns the raw value for a dot-notation key. An environment override
// is returned as a string. Zero values such as false or 0 count as set.
func (c *Config) Get(key string) (interface{}, bool) {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	value, found, err := objx.Find(c.data, splitKey(key)...)
	if err != nil {
		return nil, false
	}
	return value, found
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.Get(key)
	if !ok {
		return first(defaultValue, "")
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.Get(key)
	if !ok {
		return first(defaultValue, 0)
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return intVal
		}
	}
	return first(defaultValue, 0)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	value, ok := c.Get(key)
	if !ok {
		return first(defaultValue, 0)
	}

	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return floatVal
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return first(defaultValue, false)
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return boolVal
		}
	}
	return first(defaultValue, false)
}

// GetDuration returns a duration configuration value with optional default.
// Strings accept Go durations and phrases such as "1 day" or "2 weeks";
// plain numbers are seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	duration, ok, err := c.LookupDuration(key)
	if !ok || err != nil {
		return first(defaultValue, 0)
	}
	return duration
}

// LookupDuration returns the duration stored under key and whether it is set.
// A set value that is not a duration is a CONFIG_ERROR.
func (c *Config) LookupDuration(key string) (time.Duration, bool, error) {
	value, ok := c.Get(key)
	if !ok {
		return 0, false, nil
	}

	switch v := value.(type) {
	case time.Duration:
		return v, true, nil
	case string:
		duration, err := timex.ParseDuration(v)
		if err != nil {
			return 0, true, cxerror.Wrap(err, "invalid duration").
				WithCode(cxerror.CodeConfigError).
				WithOperation("config.LookupDuration").
				WithDetail("key", key)
		}
		return duration, true, nil
	case int:
		return time.Duration(v) * time.Second, true, nil
	case int64:
		return time.Duration(v) * time.Second, true, nil
	case float64:
		return time.Duration(v * float64(time.Second)), true, nil
	}
	return 0, true, cxerror.Newf("%s must be a duration, got %T", key, value).
		WithCode(cxerror.CodeConfigError).
		WithOperation("config.LookupDuration").
		WithDetail("key", key)
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, ok := c.Get(key)
	if !ok {
		return first(defaultValue, nil)
	}

	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return first(defaultValue, nil)
}

// GetLocation resolves a timezone name stored under key. A missing or empty
// value yields fallback; an unknown name is an INVALID_TIMEZONE error.
func (c *Config) GetLocation(key string, fallback *time.Location) (*time.Location, error) {
	name := strings.TrimSpace(c.GetString(key))
	if name == "" {
		return fallback, nil
	}

	loc, err := timex.LoadLocation(name)
	if err != nil {
		return nil, cxerror.Wrap(err, "invalid timezone in configuration").
			WithOperation("config.GetLocation").
			WithDetail("key", key)
	}
	return loc, nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	setNestedValue(c.data, key, value)
}

// GetAll returns a deep copy of the configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// EnvPrefix returns the prefix used for environment overrides
func (c *Config) EnvPrefix() string {
	return c.envPrefix
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	// time.chunk_interval -> TIME_CHUNK_INTERVAL (with prefix CHRONOX_TIME_CHUNK_INTERVAL)
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(c.EnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
