// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/internal/validators"
	"github.com/MKhiriev/pagescfg/models"
)

// Resolver produces the effective configuration from ordered fragments.
// A Resolver holds no per-call state and may be reused.
type Resolver struct {
	strict    bool
	validator validators.Validator
	logger    *logger.Logger
}

// New constructs a Resolver. Without options it runs in lenient mode,
// validates with [validators.NewConfigurationValidator] and does not log.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		validator: validators.NewConfigurationValidator(),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strict reports whether r rejects unknown keys.
func (r *Resolver) Strict() bool {
	return r.strict
}

// Resolve merges fragments, given in ascending precedence, into a new
// configuration. An empty sequence yields an empty configuration.
//
// Each fragment is validated before it is merged; the first failure aborts
// the call with an *InvalidConfigError or, in strict mode, an
// *UnknownKeyError. No partial result is returned on error.
func (r *Resolver) Resolve(fragments ...models.Fragment) (*models.Configuration, error) {
	m := newMerger()

	for i, fragment := range fragments {
		source := fragment.Source
		if source == "" {
			source = fmt.Sprintf("#%d", i)
		}

		if err := r.check(source, fragment.Config); err != nil {
			r.logger.Debug().Err(err).Str("source", source).Msg("fragment rejected")
			return nil, err
		}

		if err := m.merge(fragment.Config); err != nil {
			return nil, fmt.Errorf("error merging fragment %q: %w", source, err)
		}

		r.logger.Debug().
			Str("source", source).
			Int("position", i).
			Bool("empty", fragment.Config.IsEmpty()).
			Msg("fragment merged")
	}

	cfg := m.result()
	r.logger.Debug().Int("fragments", len(fragments)).Msg("configuration resolved")

	return &cfg, nil
}

func (r *Resolver) check(source string, cfg models.Configuration) error {
	// in both modes; such a key would bypass its field's validation
	if shadowed := cfg.ShadowedKeys(); len(shadowed) > 0 {
		key := shadowed[0]
		return &InvalidConfigError{
			Source: source,
			Field:  key,
			Value:  fmt.Sprint(cfg.Extra[key]),
			Err:    ErrShadowedKey,
		}
	}

	if err := r.validator.Validate(cfg); err != nil {
		var fieldErr *validators.FieldError
		if errors.As(err, &fieldErr) {
			return &InvalidConfigError{
				Source: source,
				Field:  fieldErr.Field,
				Value:  fieldErr.Value,
				Err:    fieldErr.Err,
			}
		}
		return &InvalidConfigError{Source: source, Err: err}
	}

	if r.strict && len(cfg.Extra) > 0 {
		return &UnknownKeyError{Source: source, Keys: cfg.UnknownKeys()}
	}

	return nil
}
