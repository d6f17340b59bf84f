// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from PAGESCFG_* environment variables and CONFIG,
// following the `env`/`envPrefix` tags on [StructuredConfig].
//
// Returns a wrapped error when a value cannot be converted to its field
// type (e.g. PAGESCFG_WATCH=sometimes).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
