package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-imd1/internal/config"
)

// envPrefix starts every variable read by the CLI.
const envPrefix = "IMD1_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // IMD1_CONFIG: config file name or path
	Format     string // IMD1_FORMAT: html, latex
	Layout     string // IMD1_LAYOUT: fragment, body, document
	Style      string // IMD1_STYLE: CSS style name or path
	InputDir   string // IMD1_INPUT_DIR: default input directory
	OutputDir  string // IMD1_OUTPUT_DIR: default output directory
	AssetPath  string // IMD1_ASSET_PATH: custom asset directory
	Workers    int    // IMD1_WORKERS: parallel workers
}

// knownEnvVars lists valid IMD1_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IMD1_CONFIG":     true,
	"IMD1_FORMAT":     true,
	"IMD1_LAYOUT":     true,
	"IMD1_STYLE":      true,
	"IMD1_INPUT_DIR":  true,
	"IMD1_OUTPUT_DIR": true,
	"IMD1_ASSET_PATH": true,
	"IMD1_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("IMD1_CONFIG"),
		Format:     os.Getenv("IMD1_FORMAT"),
		Layout:     os.Getenv("IMD1_LAYOUT"),
		Style:      os.Getenv("IMD1_STYLE"),
		InputDir:   os.Getenv("IMD1_INPUT_DIR"),
		OutputDir:  os.Getenv("IMD1_OUTPUT_DIR"),
		AssetPath:  os.Getenv("IMD1_ASSET_PATH"),
	}

	// Invalid or non-positive worker counts are ignored.
	if workers := os.Getenv("IMD1_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized IMD1_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over the config file.
// CLI flags are merged afterwards and win, giving:
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Layout != "" {
		cfg.Output.Layout = env.Layout
	}
	if env.Style != "" {
		cfg.Style.Name = env.Style
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
