// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/pagescfg/models"
)

// DefaultEnvPrefix prefixes every variable read by [FromEnv].
const DefaultEnvPrefix = "PAGES_"

// envFragment is the environment view of [models.Configuration].
// Scalars are plain values here; presence is taken from the environment
// itself so that e.g. PAGES_DEVTOOLS=false still overrides.
type envFragment struct {
	BasePath          string            `env:"BASE_PATH"`
	Preset            string            `env:"PRESET"`
	Modules           []string          `env:"MODULES" envSeparator:","`
	CSS               []string          `env:"CSS" envSeparator:","`
	Style             map[string]string `env:"STYLE"`
	Experimental      map[string]bool   `env:"EXPERIMENTAL"`
	BuildAssetsDir    string            `env:"BUILD_ASSETS_DIR"`
	CompatibilityDate string            `env:"COMPATIBILITY_DATE"`
	Devtools          bool              `env:"DEVTOOLS"`
	PrerenderRoutes   []string          `env:"PRERENDER_ROUTES" envSeparator:","`
}

// FromEnv builds the environment override fragment.
//
// Variables are looked up as prefix+NAME, e.g. PAGES_BASE_PATH. Lists are
// comma separated, maps use "key:value,key:value". A nil environ reads the
// process environment. Unset or empty variables leave their field absent.
func FromEnv(prefix string, environ map[string]string) (models.Fragment, error) {
	if environ == nil {
		environ = processEnviron()
	}

	var ef envFragment
	if err := env.ParseWithOptions(&ef, env.Options{Prefix: prefix, Environment: environ}); err != nil {
		return models.Fragment{}, fmt.Errorf("error getting env fragment: %w", err)
	}

	isSet := func(name string) bool {
		v, ok := environ[prefix+name]
		return ok && v != ""
	}

	cfg := models.Configuration{
		Modules:         ef.Modules,
		CSS:             ef.CSS,
		Style:           ef.Style,
		Experimental:    ef.Experimental,
		PrerenderRoutes: ef.PrerenderRoutes,
	}
	if isSet("BASE_PATH") {
		cfg.BasePath = models.Ptr(ef.BasePath)
	}
	if isSet("PRESET") {
		cfg.Preset = models.Ptr(models.OutputPreset(ef.Preset))
	}
	if isSet("BUILD_ASSETS_DIR") {
		cfg.BuildAssetsDir = models.Ptr(ef.BuildAssetsDir)
	}
	if isSet("COMPATIBILITY_DATE") {
		cfg.CompatibilityDate = models.Ptr(ef.CompatibilityDate)
	}
	if isSet("DEVTOOLS") {
		cfg.Devtools = models.Ptr(ef.Devtools)
	}

	return models.NewFragment(models.SourceEnv, cfg), nil
}

func processEnviron() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
