// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/pagescfg/internal/resolver"
	"github.com/MKhiriev/pagescfg/models"
)

// FromFile reads one fragment file. JSON files are accepted as they are a
// subset of YAML. The fragment's source is the path.
func FromFile(path string, strict bool) (models.Fragment, error) {
	if strings.TrimSpace(path) == "" {
		return models.Fragment{}, ErrEmptyPath
	}

	// #nosec G304 -- fragment paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Fragment{}, fmt.Errorf("error reading fragment file: %w", err)
	}

	cfg, err := Decode(data, strict)
	if err != nil {
		return models.Fragment{}, fmt.Errorf("fragment %q: %w", path, err)
	}

	return models.NewFragment(path, cfg), nil
}

// Decode parses a single YAML/JSON document into a configuration.
//
// Top-level keys outside the recognized set are always collected into
// Extra; the resolver decides whether they are allowed. With strict set,
// unknown keys nested inside recognized objects (e.g. a typo inside a route
// rule) fail with resolver.ErrUnknownKey. An empty document yields an
// empty configuration. Empty documents after the first, such as a trailing
// "---", are ignored; any other further document is ErrMultipleDocuments.
func Decode(data []byte, strict bool) (models.Configuration, error) {
	var cfg models.Configuration

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Configuration{}, nil
		}
		if strict && isUnknownFieldError(err) {
			return models.Configuration{}, fmt.Errorf("%w: %w", resolver.ErrUnknownKey, err)
		}
		return models.Configuration{}, fmt.Errorf("error decoding fragment: %w", err)
	}

	for {
		var rest yaml.Node
		err := dec.Decode(&rest)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil || !isEmptyDocument(&rest) {
			return models.Configuration{}, ErrMultipleDocuments
		}
	}

	// yaml.v3 decodes maps with non-string keys as map[any]any, which the
	// JSON encoder rejects.
	cfg.Extra = cfg.Clone().Extra

	return cfg, nil
}

// isEmptyDocument reports whether n holds nothing, as produced by a bare
// trailing "---".
func isEmptyDocument(n *yaml.Node) bool {
	if n.Kind == 0 {
		return true
	}
	if n.Kind != yaml.DocumentNode {
		return false
	}
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode || c.Tag != "!!null" || c.Value != "" {
			return false
		}
	}
	return true
}

func isUnknownFieldError(err error) bool {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return false
	}
	for _, msg := range typeErr.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}
