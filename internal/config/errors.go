// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates a log level zerolog cannot parse.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWatchConfigs indicates a negative debounce or watch mode
	// without any fragment file to watch.
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
	// ErrInvalidFragmentConfigs indicates a blank fragment path.
	ErrInvalidFragmentConfigs = errors.New("invalid fragment configuration")
)
