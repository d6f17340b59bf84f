// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/pagescfg/models"
)

// merger accumulates fragments into one configuration. Every value taken
// from a fragment is copied, so the accumulator never aliases input memory.
type merger struct {
	cfg models.Configuration

	seenModules   map[string]struct{}
	seenCSS       map[string]struct{}
	seenPrerender map[string]struct{}
}

func newMerger() *merger {
	return &merger{
		seenModules:   make(map[string]struct{}),
		seenCSS:       make(map[string]struct{}),
		seenPrerender: make(map[string]struct{}),
	}
}

func (m *merger) merge(src models.Configuration) error {
	src = src.Clone()

	if src.BasePath != nil {
		m.cfg.BasePath = models.Ptr(withTrailingSlash(*src.BasePath))
	}
	if src.Preset != nil {
		m.cfg.Preset = src.Preset
	}
	if src.BuildAssetsDir != nil {
		m.cfg.BuildAssetsDir = src.BuildAssetsDir
	}
	if src.CompatibilityDate != nil {
		m.cfg.CompatibilityDate = src.CompatibilityDate
	}
	if src.Devtools != nil {
		m.cfg.Devtools = src.Devtools
	}

	m.cfg.Modules = appendUnique(m.cfg.Modules, m.seenModules, src.Modules)
	m.cfg.CSS = appendUnique(m.cfg.CSS, m.seenCSS, src.CSS)
	m.cfg.PrerenderRoutes = appendUnique(m.cfg.PrerenderRoutes, m.seenPrerender, src.PrerenderRoutes)

	if err := mergeFlat(&m.cfg.Style, src.Style); err != nil {
		return err
	}
	if err := mergeFlat(&m.cfg.Experimental, src.Experimental); err != nil {
		return err
	}

	// Rules and extra keys are replaced whole per key; mergo would recurse
	// into them.
	m.cfg.RouteRules = replaceKeys(m.cfg.RouteRules, src.RouteRules)
	m.cfg.Extra = replaceKeys(m.cfg.Extra, src.Extra)

	return nil
}

func (m *merger) result() models.Configuration {
	return m.cfg.Clone()
}

// mergeFlat overwrites dst key by key with src. WithOverride makes zero
// values in src (false, "") win as well.
func mergeFlat[M ~map[string]V, V string | bool](dst *M, src M) error {
	if len(src) == 0 {
		return nil
	}
	if *dst == nil {
		*dst = make(M, len(src))
	}
	return mergo.Merge(dst, src, mergo.WithOverride)
}

func replaceKeys[M ~map[string]V, V any](dst, src M) M {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(M, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func appendUnique(dst []string, seen map[string]struct{}, src []string) []string {
	for _, item := range src {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		dst = append(dst, item)
	}
	return dst
}

func withTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
