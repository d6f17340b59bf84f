// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// PathList collects a repeatable path flag. It implements the flag.Value
// interface; each occurrence may also hold a comma separated list.
type PathList []string

// String returns the paths joined by commas.
func (p *PathList) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(*p, ",")
}

// Set appends every non-blank comma separated entry of s.
func (p *PathList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*p = append(*p, part)
	}
	return nil
}

// ParseFlags parses args (without the program name) into a config layer.
//
// Flags:
//
//	-f fragment file, repeatable, lowest precedence first
//	-strict reject unknown configuration keys
//	-env-prefix prefix of site override variables
//	-skip-defaults do not apply the built-in defaults fragment
//	-skip-env do not apply environment overrides
//	-format output format (json|yaml)
//	-o output file (default stdout)
//	-watch re-resolve whenever a fragment file changes
//	-debounce settle time before re-resolving (e.g. "200ms")
//	-log-level zerolog level name
//	-c/-config json file path with tool settings
//	-version print build info and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var fragments PathList
	var strict, skipDefaults, skipEnv bool
	var envPrefix string
	var format, outputPath string
	var watch bool
	var debounce time.Duration
	var logLevel string
	var jsonConfigPath string
	var showVersion bool

	fs := flag.NewFlagSet("pagescfg", flag.ContinueOnError)
	fs.Var(&fragments, "f", "Fragment file (repeatable, lowest precedence first)")
	fs.BoolVar(&strict, "strict", false, "Reject unknown configuration keys")
	fs.StringVar(&envPrefix, "env-prefix", "", "Prefix of site override environment variables")
	fs.BoolVar(&skipDefaults, "skip-defaults", false, "Do not apply built-in defaults")
	fs.BoolVar(&skipEnv, "skip-env", false, "Do not apply environment overrides")
	fs.StringVar(&format, "format", "", "Output format (json|yaml)")
	fs.StringVar(&outputPath, "o", "", "Output file (default stdout)")
	fs.BoolVar(&watch, "watch", false, "Re-resolve when a fragment file changes")
	fs.DurationVar(&debounce, "debounce", 0, "Settle time before re-resolving (e.g., 200ms)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// positional arguments are fragment files too
	fragments = append(fragments, fs.Args()...)

	return &StructuredConfig{
		Fragments: Fragments{
			Paths:        fragments,
			Strict:       strict,
			EnvPrefix:    envPrefix,
			SkipDefaults: skipDefaults,
			SkipEnv:      skipEnv,
		},
		Output: Output{
			Format: format,
			Path:   outputPath,
		},
		Watch: Watch{
			Enabled:  watch,
			Debounce: debounce,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
