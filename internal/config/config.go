package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-imd1/internal/fileutil"
	"github.com/alnah/go-imd1/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the user config directory.
const AppName = "go-imd1"

// Field length limits.
const (
	MaxPathLength = 4096
	MaxNameLength = 64 // style and template set names
	MaxCSSLength  = 1 << 16
	MaxWorkers    = 64
)

// Accepted enumerations, lower case.
var (
	formatNames = []string{"html", "htm", "latex", "tex"}
	layoutNames = []string{"fragment", "body", "document"}
)

// Config holds the settings of a conversion run.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Style     StyleConfig     `yaml:"style"`
	Templates TemplatesConfig `yaml:"templates"`
	Metadata  MetadataConfig  `yaml:"metadata"`
	Assets    AssetsConfig    `yaml:"assets"`
	Workers   int             `yaml:"workers"` // 0 = automatic
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output options.
type OutputConfig struct {
	Format     string `yaml:"format"`     // "html" or "latex" (default: "html")
	Layout     string `yaml:"layout"`     // "fragment", "body", "document" (default: "fragment")
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	SkipHidden bool   `yaml:"skipHidden"` // Do not write documents marked hidden
}

// StyleConfig defines CSS for HTML body and document layouts.
type StyleConfig struct {
	Name string `yaml:"name"` // style name, CSS file path, or inline CSS
	CSS  string `yaml:"css"`  // extra rules appended after the style
}

// TemplatesConfig selects the document template set.
type TemplatesConfig struct {
	Name string `yaml:"name"` // empty = "default"
}

// MetadataConfig defines how extracted metadata is written.
type MetadataConfig struct {
	Version int  `yaml:"version"` // wire version, 1 or 2 (0 = current)
	Sidecar bool `yaml:"sidecar"` // write <output>.meta next to each output
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks enumerations, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.css", c.Style.CSS, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.name", c.Style.Name, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.name", c.Templates.Name, MaxNameLength); err != nil {
		return err
	}

	if err := validateEnum("output.format", c.Output.Format, formatNames); err != nil {
		return err
	}
	if err := validateEnum("output.layout", c.Output.Layout, layoutNames); err != nil {
		return err
	}

	switch c.Metadata.Version {
	case 0, 1, 2:
	default:
		return fmt.Errorf("%w: metadata.version: must be 1 or 2, got %d", ErrInvalidValue, c.Metadata.Version)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, ignoring case.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, strings.ToLower(strings.TrimSpace(value))) {
		return nil
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a configuration producing HTML fragments with
// embedded assets.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{Format: "html", Layout: "fragment"},
		Metadata: MetadataConfig{Version: 2},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the files tried for a config name, in order:
// the current directory then the user config directory, each with
// .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
