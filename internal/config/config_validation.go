// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/internal/render"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. ShowVersion short-circuits every other check.
func (cfg *StructuredConfig) validate() error {
	if cfg.ShowVersion {
		return nil
	}

	if _, err := render.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	for _, p := range cfg.Fragments.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty fragment path", ErrInvalidFragmentConfigs)
		}
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce %s", ErrInvalidWatchConfigs, cfg.Watch.Debounce)
	}

	if cfg.Watch.Enabled && len(cfg.Fragments.Paths) == 0 {
		return fmt.Errorf("%w: watch mode needs at least one fragment file", ErrInvalidWatchConfigs)
	}

	return nil
}
