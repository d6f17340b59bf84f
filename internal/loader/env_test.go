// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pagescfg/models"
)

func TestFromEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"PAGES_BASE_PATH":          "/clay_score_card/",
		"PAGES_PRESET":             "static",
		"PAGES_MODULES":            "@nuxt/eslint,@nuxt/ui",
		"PAGES_CSS":                "~/assets/css/main.css",
		"PAGES_STYLE":              "primary:green,neutral:slate",
		"PAGES_EXPERIMENTAL":       "payloadExtraction:false,viewTransition:true",
		"PAGES_BUILD_ASSETS_DIR":   "_assets",
		"PAGES_COMPATIBILITY_DATE": "2025-01-15",
		"PAGES_DEVTOOLS":           "false",
		"PAGES_PRERENDER_ROUTES":   "/,/about",
	}

	// Act
	f, err := FromEnv(DefaultEnvPrefix, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.SourceEnv, f.Source)

	cfg := f.Config
	assert.Equal(t, "/clay_score_card/", *cfg.BasePath)
	assert.Equal(t, models.PresetStatic, *cfg.Preset)
	assert.Equal(t, []string{"@nuxt/eslint", "@nuxt/ui"}, cfg.Modules)
	assert.Equal(t, []string{"~/assets/css/main.css"}, cfg.CSS)
	assert.Equal(t, map[string]string{"primary": "green", "neutral": "slate"}, cfg.Style)
	assert.Equal(t, map[string]bool{"payloadExtraction": false, "viewTransition": true}, cfg.Experimental)
	assert.Equal(t, "_assets", *cfg.BuildAssetsDir)
	assert.Equal(t, "2025-01-15", *cfg.CompatibilityDate)
	require.NotNil(t, cfg.Devtools)
	assert.False(t, *cfg.Devtools)
	assert.Equal(t, []string{"/", "/about"}, cfg.PrerenderRoutes)
}

func TestFromEnv_EmptyEnvironment(t *testing.T) {
	f, err := FromEnv(DefaultEnvPrefix, map[string]string{})
	require.NoError(t, err)
	assert.True(t, f.Config.IsEmpty())
}

func TestFromEnv_EmptyValuesAreAbsent(t *testing.T) {
	f, err := FromEnv(DefaultEnvPrefix, map[string]string{
		"PAGES_BASE_PATH": "",
		"PAGES_DEVTOOLS":  "",
	})
	require.NoError(t, err)
	assert.Nil(t, f.Config.BasePath)
	assert.Nil(t, f.Config.Devtools)
}

func TestFromEnv_CustomPrefix(t *testing.T) {
	f, err := FromEnv("SITE_", map[string]string{
		"SITE_BASE_PATH":  "/site/",
		"PAGES_BASE_PATH": "/ignored/",
	})
	require.NoError(t, err)
	assert.Equal(t, "/site/", *f.Config.BasePath)
}

func TestFromEnv_InvalidBool(t *testing.T) {
	_, err := FromEnv(DefaultEnvPrefix, map[string]string{"PAGES_DEVTOOLS": "maybe"})
	assert.Error(t, err)
}

func TestFromEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("PAGESTEST_BASE_PATH", "/from-process/")
	t.Setenv("PAGESTEST_MODULES", "ui")

	f, err := FromEnv("PAGESTEST_", nil)
	require.NoError(t, err)
	assert.Equal(t, "/from-process/", *f.Config.BasePath)
	assert.Equal(t, []string{"ui"}, f.Config.Modules)
}
