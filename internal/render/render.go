// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render writes an effective configuration in the format the host
// build framework reads.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/pagescfg/models"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a case-insensitive name to a Format. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes cfg to w. Absent fields are omitted and unrecognized
// pass-through keys are emitted at the top level.
func Encode(w io.Writer, cfg *models.Configuration, format Format) error {
	if cfg == nil {
		cfg = &models.Configuration{}
	}
	cfg = withoutShadowedKeys(cfg)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error flushing yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// withoutShadowedKeys drops Extra keys that collide with a recognized field,
// so YAML matches the JSON output where the field always wins. yaml.v3
// refuses to encode such a collision.
func withoutShadowedKeys(cfg *models.Configuration) *models.Configuration {
	shadowed := cfg.ShadowedKeys()
	if len(shadowed) == 0 {
		return cfg
	}
	c := cfg.Clone()
	for _, k := range shadowed {
		delete(c.Extra, k)
	}
	return &c
}
