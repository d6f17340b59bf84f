// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/models"
)

// Options controls which sources [Loader.Load] reads.
type Options struct {
	// Paths are the fragment files, lowest precedence first.
	Paths []string

	// Strict rejects unknown nested keys while decoding files.
	Strict bool

	// EnvPrefix prefixes environment variable names; empty means
	// DefaultEnvPrefix.
	EnvPrefix string

	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// SkipDefaults omits the built-in defaults fragment.
	SkipDefaults bool

	// SkipEnv omits the environment fragment.
	SkipEnv bool
}

// Loader assembles the ordered fragment stack.
type Loader struct {
	opts   Options
	logger *logger.Logger
}

// New constructs a Loader. A nil logger disables logging.
func New(opts Options, log *logger.Logger) *Loader {
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = DefaultEnvPrefix
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{opts: opts, logger: log}
}

// Paths returns the fragment file paths in precedence order.
func (l *Loader) Paths() []string {
	return append([]string(nil), l.opts.Paths...)
}

// Load reads every source and returns the fragments in ascending
// precedence: defaults, files, environment. All file errors are reported
// together.
func (l *Loader) Load() ([]models.Fragment, error) {
	fragments := make([]models.Fragment, 0, len(l.opts.Paths)+2)

	if !l.opts.SkipDefaults {
		fragments = append(fragments, Defaults())
	}

	var errs error
	for _, path := range l.opts.Paths {
		fragment, err := FromFile(path, l.opts.Strict)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		l.logger.Debug().Str("path", path).Msg("fragment file loaded")
		fragments = append(fragments, fragment)
	}

	if !l.opts.SkipEnv {
		fragment, err := FromEnv(l.opts.EnvPrefix, l.opts.Environ)
		if err != nil {
			errs = errors.Join(errs, err)
		} else {
			fragments = append(fragments, fragment)
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("error loading fragments: %w", errs)
	}

	return fragments, nil
}
