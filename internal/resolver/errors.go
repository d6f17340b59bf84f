// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig classifies a recognized field holding a value that
	// violates its format contract.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownKey classifies a fragment supplying a key outside the
	// recognized set while strict mode is on.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrShadowedKey is the cause of an [InvalidConfigError] for a
	// recognized key supplied through the pass-through map instead of its
	// typed field.
	ErrShadowedKey = errors.New("recognized key given as a pass-through key")
)

// InvalidConfigError is returned by [Resolver.Resolve] when a fragment
// holds a malformed value. It matches ErrInvalidConfig and unwraps to the
// underlying validation error.
type InvalidConfigError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *InvalidConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: fragment %q: %v", ErrInvalidConfig, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: fragment %q: %s %q: %v", ErrInvalidConfig, e.Source, e.Field, e.Value, e.Err)
}

func (e *InvalidConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// UnknownKeyError is returned in strict mode when a fragment carries keys
// the resolver does not recognize. Keys are sorted.
type UnknownKeyError struct {
	Source string
	Keys   []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: fragment %q: %s", ErrUnknownKey, e.Source, strings.Join(e.Keys, ", "))
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}
