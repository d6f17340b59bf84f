// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrBasePathNoLeadingSlash = errors.New("base path must start with '/'")
	ErrInvalidPreset          = errors.New("unknown output preset")
	ErrInvalidDate            = errors.New("compatibility date must be in YYYY-MM-DD form")
	ErrEmptyModule            = errors.New("module identifier cannot be empty")
	ErrEmptyStylesheet        = errors.New("stylesheet path cannot be empty")
	ErrEmptyRoutePattern      = errors.New("route pattern cannot be empty")
	ErrRouteNoLeadingSlash    = errors.New("route must start with '/'")
)

// FieldError reports which configuration field failed validation and the
// offending value. It unwraps to one of the sentinel errors above.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
