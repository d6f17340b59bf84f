// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/internal/validators"
)

// Option customizes a [Resolver].
type Option func(*Resolver)

// WithStrict makes Resolve reject fragments carrying unrecognized
// top-level keys. When off, such keys pass through into the result.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithLogger sets the logger used for per-fragment debug output.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithValidator replaces the field validator.
func WithValidator(v validators.Validator) Option {
	return func(r *Resolver) {
		if v != nil {
			r.validator = v
		}
	}
}
