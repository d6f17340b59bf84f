// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Recognized top-level configuration keys. The names match the YAML/JSON
// field names of [Configuration].
const (
	KeyBasePath          = "basePath"
	KeyPreset            = "preset"
	KeyModules           = "modules"
	KeyStyle             = "style"
	KeyCSS               = "css"
	KeyRouteRules        = "routeRules"
	KeyExperimental      = "experimental"
	KeyBuildAssetsDir    = "buildAssetsDir"
	KeyCompatibilityDate = "compatibilityDate"
	KeyDevtools          = "devtools"
	KeyPrerenderRoutes   = "prerenderRoutes"
)

// RecognizedKeys lists every top-level key understood by the resolver,
// in declaration order.
var RecognizedKeys = []string{
	KeyBasePath,
	KeyPreset,
	KeyModules,
	KeyStyle,
	KeyCSS,
	KeyRouteRules,
	KeyExperimental,
	KeyBuildAssetsDir,
	KeyCompatibilityDate,
	KeyDevtools,
	KeyPrerenderRoutes,
}

// Configuration is a (possibly partial) static-site build configuration.
//
// Pointer scalars carry presence: a nil pointer means "not defined here",
// which is different from a defined empty value. The same type is used both
// for a single fragment and for the effective, merged result.
type Configuration struct {
	// BasePath is the deployment path prefix, e.g. "/clay_score_card/".
	BasePath *string `yaml:"basePath,omitempty" json:"basePath,omitempty"`

	// Preset selects whether the site is generated statically or served.
	Preset *OutputPreset `yaml:"preset,omitempty" json:"preset,omitempty"`

	// Modules is the ordered list of framework module identifiers.
	Modules []string `yaml:"modules,omitempty" json:"modules,omitempty"`

	// Style maps UI theme tokens (primary, neutral, ...) to values.
	Style map[string]string `yaml:"style,omitempty" json:"style,omitempty"`

	// CSS is the ordered list of global stylesheet paths.
	CSS []string `yaml:"css,omitempty" json:"css,omitempty"`

	// RouteRules maps a route pattern to its rendering behavior.
	RouteRules map[string]RouteRule `yaml:"routeRules,omitempty" json:"routeRules,omitempty"`

	// Experimental toggles framework feature flags.
	Experimental map[string]bool `yaml:"experimental,omitempty" json:"experimental,omitempty"`

	// BuildAssetsDir is the directory, relative to BasePath, holding hashed assets.
	BuildAssetsDir *string `yaml:"buildAssetsDir,omitempty" json:"buildAssetsDir,omitempty"`

	// CompatibilityDate pins framework behavior to a release date (YYYY-MM-DD).
	CompatibilityDate *string `yaml:"compatibilityDate,omitempty" json:"compatibilityDate,omitempty"`

	// Devtools enables framework development tooling.
	Devtools *bool `yaml:"devtools,omitempty" json:"devtools,omitempty"`

	// PrerenderRoutes lists routes that must be rendered to HTML at build time.
	PrerenderRoutes []string `yaml:"prerenderRoutes,omitempty" json:"prerenderRoutes,omitempty"`

	// Extra collects top-level keys outside the recognized set. It is only
	// populated by lenient decoding and is emitted back at the top level.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RouteRule holds behavior flags for one route pattern.
type RouteRule struct {
	Prerender *bool             `yaml:"prerender,omitempty" json:"prerender,omitempty"`
	SSR       *bool             `yaml:"ssr,omitempty" json:"ssr,omitempty"`
	Redirect  *string           `yaml:"redirect,omitempty" json:"redirect,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// IsEmpty reports whether c defines no field at all.
func (c Configuration) IsEmpty() bool {
	return c.BasePath == nil &&
		c.Preset == nil &&
		len(c.Modules) == 0 &&
		len(c.Style) == 0 &&
		len(c.CSS) == 0 &&
		len(c.RouteRules) == 0 &&
		len(c.Experimental) == 0 &&
		c.BuildAssetsDir == nil &&
		c.CompatibilityDate == nil &&
		c.Devtools == nil &&
		len(c.PrerenderRoutes) == 0 &&
		len(c.Extra) == 0
}

// UnknownKeys returns the sorted top-level keys held in Extra.
func (c Configuration) UnknownKeys() []string {
	return slices.Sorted(maps.Keys(c.Extra))
}

// ShadowedKeys returns the sorted Extra keys that collide with a recognized
// key. Decoding never produces them; they only appear when Extra is filled
// by hand.
func (c Configuration) ShadowedKeys() []string {
	var out []string
	for _, k := range c.UnknownKeys() {
		if slices.Contains(RecognizedKeys, k) {
			out = append(out, k)
		}
	}
	return out
}

// AsFragment wraps c into a [Fragment] attributed to source.
func (c Configuration) AsFragment(source string) Fragment {
	return Fragment{Source: source, Config: c.Clone()}
}

// Clone returns an alias-free deep copy of c.
// Nil maps and slices stay nil.
func (c Configuration) Clone() Configuration {
	out := Configuration{
		BasePath:          clonePtr(c.BasePath),
		Preset:            clonePtr(c.Preset),
		Modules:           slices.Clone(c.Modules),
		Style:             maps.Clone(c.Style),
		CSS:               slices.Clone(c.CSS),
		Experimental:      maps.Clone(c.Experimental),
		BuildAssetsDir:    clonePtr(c.BuildAssetsDir),
		CompatibilityDate: clonePtr(c.CompatibilityDate),
		Devtools:          clonePtr(c.Devtools),
		PrerenderRoutes:   slices.Clone(c.PrerenderRoutes),
		Extra:             cloneExtra(c.Extra),
	}

	if c.RouteRules != nil {
		out.RouteRules = make(map[string]RouteRule, len(c.RouteRules))
		for pattern, rule := range c.RouteRules {
			out.RouteRules[pattern] = rule.Clone()
		}
	}

	return out
}

// Clone returns an alias-free deep copy of r.
func (r RouteRule) Clone() RouteRule {
	return RouteRule{
		Prerender: clonePtr(r.Prerender),
		SSR:       clonePtr(r.SSR),
		Redirect:  clonePtr(r.Redirect),
		Headers:   maps.Clone(r.Headers),
	}
}

// MarshalJSON emits recognized fields and lifts Extra keys to the top level.
// A recognized field always wins over an Extra key with the same name.
func (c Configuration) MarshalJSON() ([]byte, error) {
	type plain Configuration

	data, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return data, nil
	}

	var merged map[string]any
	if err = json.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("error lifting extra keys: %w", err)
	}
	for k, v := range c.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}

	return json.Marshal(merged)
}

// Ptr returns a pointer to v. It is handy for building fragments in code.
func Ptr[T any](v T) *T {
	return &v
}

func cloneExtra(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the generic trees produced by YAML/JSON decoding.
// Maps with non-string keys, which YAML allows, come out keyed by their
// printed form so the tree stays JSON-encodable.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneExtra(value)
	case map[any]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[fmt.Sprint(k)] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
