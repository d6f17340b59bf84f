// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level runtime configuration of the pagescfg
// tool itself (not the site configuration it resolves). It is populated by
// merging an optional JSON file, environment variables and command-line
// flags, then filled with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Fragments describes where site configuration fragments come from.
	Fragments Fragments `envPrefix:"PAGESCFG_"`

	// Output describes how the effective configuration is written.
	Output Output `envPrefix:"PAGESCFG_"`

	// Watch holds the file watch mode settings.
	Watch Watch `envPrefix:"PAGESCFG_"`

	// Log holds logger settings.
	Log Log `envPrefix:"PAGESCFG_"`

	// JSONFilePath is the optional path to a JSON file with tool settings.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion prints build info and exits. Flag only.
	ShowVersion bool
}

// Fragments groups the fragment sources handed to the loader.
type Fragments struct {
	// Paths are fragment files in ascending precedence.
	// Env: PAGESCFG_FRAGMENTS (comma separated)
	Paths []string `env:"FRAGMENTS" envSeparator:","`

	// Strict rejects keys outside the recognized configuration schema.
	// Env: PAGESCFG_STRICT
	Strict bool `env:"STRICT"`

	// EnvPrefix prefixes the site override variables (e.g. PAGES_BASE_PATH).
	// Env: PAGESCFG_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// SkipDefaults leaves the built-in defaults fragment out of the stack.
	// Env: PAGESCFG_SKIP_DEFAULTS
	SkipDefaults bool `env:"SKIP_DEFAULTS"`

	// SkipEnv leaves the environment override fragment out of the stack.
	// Env: PAGESCFG_SKIP_ENV
	SkipEnv bool `env:"SKIP_ENV"`
}

// Output controls rendering of the effective configuration.
type Output struct {
	// Format is "json" or "yaml".
	// Env: PAGESCFG_FORMAT
	Format string `env:"FORMAT"`

	// Path is the output file; empty means stdout.
	// Env: PAGESCFG_OUTPUT
	Path string `env:"OUTPUT"`
}

// Watch controls the rebuild-on-change mode.
type Watch struct {
	// Enabled keeps the tool running and re-resolves on fragment changes.
	// Env: PAGESCFG_WATCH
	Enabled bool `env:"WATCH"`

	// Debounce is how long changes must settle before re-resolving.
	// Env: PAGESCFG_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: PAGESCFG_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Default values applied to fields left unset by every source.
const (
	DefaultEnvPrefix = "PAGES_"
	DefaultFormat    = "json"
	DefaultLogLevel  = "info"
	DefaultDebounce  = 200 * time.Millisecond
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Fragments: Fragments{EnvPrefix: DefaultEnvPrefix},
		Output:    Output{Format: DefaultFormat},
		Watch:     Watch{Debounce: DefaultDebounce},
		Log:       Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (later sources
// win for non-zero fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//
// Fields still unset afterwards receive defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
