// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/internal/mock"
	"github.com/MKhiriev/pagescfg/internal/validators"
	"github.com/MKhiriev/pagescfg/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func frag(source string, cfg models.Configuration) models.Fragment {
	return models.NewFragment(source, cfg)
}

func mustResolve(t *testing.T, r *Resolver, fragments ...models.Fragment) models.Configuration {
	t.Helper()
	cfg, err := r.Resolve(fragments...)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	return *cfg
}

// siteFragments mirrors a typical stack: built-in defaults, the project
// file, the theme file and an environment override.
func siteFragments() []models.Fragment {
	return []models.Fragment{
		frag(models.SourceDefaults, models.Configuration{
			BasePath:       models.Ptr("/"),
			Preset:         models.Ptr(models.PresetStatic),
			BuildAssetsDir: models.Ptr("_nuxt"),
		}),
		frag("site.yaml", models.Configuration{
			BasePath:          models.Ptr("/clay_score_card/"),
			Modules:           []string{"@nuxt/eslint", "@nuxt/ui"},
			CSS:               []string{"~/assets/css/main.css"},
			RouteRules:        map[string]models.RouteRule{"/": {Prerender: models.Ptr(true)}},
			CompatibilityDate: models.Ptr("2025-01-15"),
			Devtools:          models.Ptr(true),
			PrerenderRoutes:   []string{"/"},
		}),
		frag("theme.yaml", models.Configuration{
			Style: map[string]string{"primary": "green", "neutral": "slate"},
		}),
		frag(models.SourceEnv, models.Configuration{
			Devtools:     models.Ptr(false),
			Experimental: map[string]bool{"payloadExtraction": false},
		}),
	}
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew_Defaults(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.False(t, r.Strict())
	assert.NotNil(t, r.validator)
	assert.NotNil(t, r.logger)
}

func TestNew_Options(t *testing.T) {
	r := New(WithStrict(true), WithLogger(nil), WithValidator(nil))
	assert.True(t, r.Strict())
	assert.NotNil(t, r.validator, "nil validator must not replace the default")
	assert.NotNil(t, r.logger, "nil logger must not replace the default")
}

// ── merge properties ──────────────────────────────────────────────────────────

func TestResolve_EmptySequence(t *testing.T) {
	cfg := mustResolve(t, New())
	assert.True(t, cfg.IsEmpty())
	assert.Equal(t, models.Configuration{}, cfg)
}

func TestResolve_EmptyFragments(t *testing.T) {
	cfg := mustResolve(t, New(), frag("a", models.Configuration{}), frag("b", models.Configuration{}))
	assert.True(t, cfg.IsEmpty())
}

func TestResolve_ScalarLastWriterWins(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{BasePath: models.Ptr("/a/")}),
		frag("b", models.Configuration{BasePath: models.Ptr("/b/")}),
	)
	require.NotNil(t, cfg.BasePath)
	assert.Equal(t, "/b/", *cfg.BasePath)
}

func TestResolve_ScalarKeptWhenLaterFragmentOmitsIt(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{BasePath: models.Ptr("/a/"), Preset: models.Ptr(models.PresetServer)}),
		frag("b", models.Configuration{Preset: models.Ptr(models.PresetStatic)}),
		frag("c", models.Configuration{}),
	)
	assert.Equal(t, "/a/", *cfg.BasePath)
	assert.Equal(t, models.PresetStatic, *cfg.Preset)
}

func TestResolve_FalseOverridesTrue(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Devtools: models.Ptr(true)}),
		frag("b", models.Configuration{Devtools: models.Ptr(false)}),
	)
	require.NotNil(t, cfg.Devtools)
	assert.False(t, *cfg.Devtools)
}

func TestResolve_ModulesDedupPreservesFirstOccurrence(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Modules: []string{"ui", "eslint"}}),
		frag("b", models.Configuration{Modules: []string{"eslint", "image"}}),
	)
	assert.Equal(t, []string{"ui", "eslint", "image"}, cfg.Modules)
}

func TestResolve_ModulesDedupWithinOneFragment(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Modules: []string{"ui", "ui", "eslint", "ui"}}),
	)
	assert.Equal(t, []string{"ui", "eslint"}, cfg.Modules)
}

func TestResolve_CSSAndPrerenderRoutesDedup(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{CSS: []string{"main.css"}, PrerenderRoutes: []string{"/"}}),
		frag("b", models.Configuration{CSS: []string{"theme.css", "main.css"}, PrerenderRoutes: []string{"/about", "/"}}),
	)
	assert.Equal(t, []string{"main.css", "theme.css"}, cfg.CSS)
	assert.Equal(t, []string{"/", "/about"}, cfg.PrerenderRoutes)
}

func TestResolve_StyleShallowMerge(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Style: map[string]string{"primary": "green"}}),
		frag("b", models.Configuration{Style: map[string]string{"neutral": "slate"}}),
	)
	assert.Equal(t, map[string]string{"primary": "green", "neutral": "slate"}, cfg.Style)
}

func TestResolve_StyleKeyOverwritten(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Style: map[string]string{"primary": "green", "neutral": "slate"}}),
		frag("b", models.Configuration{Style: map[string]string{"primary": "blue"}}),
		frag("c", models.Configuration{Style: map[string]string{"neutral": ""}}),
	)
	assert.Equal(t, map[string]string{"primary": "blue", "neutral": ""}, cfg.Style)
}

func TestResolve_ExperimentalShallowMerge(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Experimental: map[string]bool{"payloadExtraction": true, "viewTransition": true}}),
		frag("b", models.Configuration{Experimental: map[string]bool{"payloadExtraction": false, "typedPages": true}}),
	)
	assert.Equal(t, map[string]bool{
		"payloadExtraction": false,
		"viewTransition":    true,
		"typedPages":        true,
	}, cfg.Experimental)
}

func TestResolve_RouteRulesLastWriterWinsPerPattern(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{RouteRules: map[string]models.RouteRule{
			"/":       {Prerender: models.Ptr(true), Headers: map[string]string{"cache-control": "max-age=60"}},
			"/admin/": {SSR: models.Ptr(false)},
		}}),
		frag("b", models.Configuration{RouteRules: map[string]models.RouteRule{
			"/":         {Prerender: models.Ptr(false)},
			"/old-page": {Redirect: models.Ptr("/new-page")},
		}}),
	)

	want := map[string]models.RouteRule{
		"/":         {Prerender: models.Ptr(false)},
		"/admin/":   {SSR: models.Ptr(false)},
		"/old-page": {Redirect: models.Ptr("/new-page")},
	}
	assert.Empty(t, cmp.Diff(want, cfg.RouteRules))
}

func TestResolve_BasePathGetsTrailingSlash(t *testing.T) {
	cfg := mustResolve(t, New(), frag("a", models.Configuration{BasePath: models.Ptr("/clay_score_card")}))
	assert.Equal(t, "/clay_score_card/", *cfg.BasePath)
}

func TestResolve_FullStack(t *testing.T) {
	cfg := mustResolve(t, New(), siteFragments()...)

	want := models.Configuration{
		BasePath:          models.Ptr("/clay_score_card/"),
		Preset:            models.Ptr(models.PresetStatic),
		Modules:           []string{"@nuxt/eslint", "@nuxt/ui"},
		Style:             map[string]string{"primary": "green", "neutral": "slate"},
		CSS:               []string{"~/assets/css/main.css"},
		RouteRules:        map[string]models.RouteRule{"/": {Prerender: models.Ptr(true)}},
		Experimental:      map[string]bool{"payloadExtraction": false},
		BuildAssetsDir:    models.Ptr("_nuxt"),
		CompatibilityDate: models.Ptr("2025-01-15"),
		Devtools:          models.Ptr(false),
		PrerenderRoutes:   []string{"/"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("resolved configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := New()
	first := mustResolve(t, r, siteFragments()...)
	for i := 0; i < 20; i++ {
		next := mustResolve(t, r, siteFragments()...)
		if diff := cmp.Diff(first, next); diff != "" {
			t.Fatalf("run %d differs (-first +next):\n%s", i, diff)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := New()
	once := mustResolve(t, r, siteFragments()...)
	twice := mustResolve(t, r, once.AsFragment("previous"))

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("re-resolving changed the result (-once +twice):\n%s", diff)
	}
}

func TestResolve_DoesNotMutateOrAliasInputs(t *testing.T) {
	fragments := siteFragments()
	before := make([]models.Configuration, len(fragments))
	for i, f := range fragments {
		before[i] = f.Config.Clone()
	}

	cfg := mustResolve(t, New(), fragments...)
	for i, f := range fragments {
		assert.Empty(t, cmp.Diff(before[i], f.Config), "fragment %d mutated", i)
	}

	cfg.Modules[0] = "changed"
	cfg.Style["primary"] = "red"
	*cfg.BasePath = "/changed/"
	assert.Equal(t, "@nuxt/eslint", fragments[1].Config.Modules[0])
	assert.Equal(t, "green", fragments[2].Config.Style["primary"])
	assert.Equal(t, "/clay_score_card/", *fragments[1].Config.BasePath)
}

// ── unknown keys ──────────────────────────────────────────────────────────────

func TestResolve_LenientPassesExtraThrough(t *testing.T) {
	cfg := mustResolve(t, New(),
		frag("a", models.Configuration{Extra: map[string]any{"router": "a", "nitro": map[string]any{"x": 1}}}),
		frag("b", models.Configuration{Extra: map[string]any{"router": "b"}}),
	)
	assert.Equal(t, map[string]any{"router": "b", "nitro": map[string]any{"x": 1}}, cfg.Extra)
}

func TestResolve_StrictRejectsUnknownKeys(t *testing.T) {
	_, err := New(WithStrict(true)).Resolve(
		frag("site.yaml", models.Configuration{BasePath: models.Ptr("/a/")}),
		frag("legacy.yaml", models.Configuration{Extra: map[string]any{"nitro": 1, "app": 2}}),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)

	var keyErr *UnknownKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "legacy.yaml", keyErr.Source)
	assert.Equal(t, []string{"app", "nitro"}, keyErr.Keys)
	assert.Equal(t, `unknown config key: fragment "legacy.yaml": app, nitro`, err.Error())
}

func TestResolve_RecognizedKeyInExtraIsInvalid(t *testing.T) {
	for _, strict := range []bool{false, true} {
		t.Run(fmt.Sprintf("strict=%t", strict), func(t *testing.T) {
			cfg, err := New(WithStrict(strict)).Resolve(
				frag("site.yaml", models.Configuration{BasePath: models.Ptr("/a/")}),
				frag("hand.go", models.Configuration{Extra: map[string]any{
					models.KeyBasePath: "clay_score_card/",
					"router":           "kept",
				}}),
			)

			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, ErrShadowedKey)
			assert.NotErrorIs(t, err, ErrUnknownKey)

			var invalid *InvalidConfigError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "hand.go", invalid.Source)
			assert.Equal(t, models.KeyBasePath, invalid.Field)
			assert.Equal(t, "clay_score_card/", invalid.Value)
		})
	}
}

func TestResolve_StrictAcceptsRecognizedKeys(t *testing.T) {
	_, err := New(WithStrict(true)).Resolve(siteFragments()...)
	assert.NoError(t, err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestResolve_InvalidBasePath(t *testing.T) {
	cfg, err := New().Resolve(frag("site.yaml", models.Configuration{BasePath: models.Ptr("clay_score_card/")}))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, validators.ErrBasePathNoLeadingSlash)

	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "site.yaml", invalid.Source)
	assert.Equal(t, models.KeyBasePath, invalid.Field)
	assert.Equal(t, "clay_score_card/", invalid.Value)
}

func TestResolve_InvalidFieldsTable(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.Configuration
		wantErr error
	}{
		{"preset", models.Configuration{Preset: models.Ptr(models.OutputPreset("edge"))}, validators.ErrInvalidPreset},
		{"module", models.Configuration{Modules: []string{""}}, validators.ErrEmptyModule},
		{"date", models.Configuration{CompatibilityDate: models.Ptr("yesterday")}, validators.ErrInvalidDate},
		{"route pattern", models.Configuration{RouteRules: map[string]models.RouteRule{" ": {}}}, validators.ErrEmptyRoutePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Resolve(frag("f", tt.cfg))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_InvalidLaterFragmentFailsWholeCall(t *testing.T) {
	cfg, err := New().Resolve(
		frag("ok", models.Configuration{BasePath: models.Ptr("/a/")}),
		frag("bad", models.Configuration{BasePath: models.Ptr("b/")}),
	)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolve_UnnamedFragmentGetsPositionalSource(t *testing.T) {
	_, err := New().Resolve(
		models.Fragment{},
		models.Fragment{Config: models.Configuration{BasePath: models.Ptr("x")}},
	)

	var invalid *InvalidConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "#1", invalid.Source)
}

func TestResolve_NonFieldValidatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any()).Return(boom).Times(1)

	_, err := New(WithValidator(v)).Resolve(
		frag("f", models.Configuration{}),
		frag("never-reached", models.Configuration{}),
	)

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_ValidatesEveryFragmentOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fragments := siteFragments()
	v := mock.NewMockValidator(ctrl)
	for _, f := range fragments {
		v.EXPECT().Validate(f.Config).Return(nil).Times(1)
	}

	_, err := New(WithValidator(v)).Resolve(fragments...)
	require.NoError(t, err)
}

func TestResolve_ShadowedKeyRejectedBeforeValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any()).Times(0)

	_, err := New(WithValidator(v)).Resolve(
		frag("hand.go", models.Configuration{Extra: map[string]any{models.KeyPreset: "static"}}),
	)
	assert.ErrorIs(t, err, ErrShadowedKey)
}

func TestInvalidConfigError_Message(t *testing.T) {
	err := &InvalidConfigError{
		Source: "site.yaml",
		Field:  models.KeyBasePath,
		Value:  "x/",
		Err:    validators.ErrBasePathNoLeadingSlash,
	}
	assert.Equal(t, `invalid config: fragment "site.yaml": basePath "x/": base path must start with '/'`, err.Error())
}

// ── logging ───────────────────────────────────────────────────────────────────

func TestResolve_LogsPerFragment(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(logger.New(&buf, "test", zerolog.DebugLevel)))

	mustResolve(t, r, siteFragments()...)

	out := buf.String()
	assert.Contains(t, out, `"source":"site.yaml"`)
	assert.Contains(t, out, `"message":"fragment merged"`)
	assert.Contains(t, out, `"message":"configuration resolved"`)
}
