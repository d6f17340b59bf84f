// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"time"

	"github.com/MKhiriev/pagescfg/models"
)

// Field name constants used to scope validation. They reuse the
// configuration key names so errors read the same as the input files.
const (
	// FieldBasePath targets the deployment base path.
	FieldBasePath = models.KeyBasePath

	// FieldPreset targets the output preset enum.
	FieldPreset = models.KeyPreset

	// FieldModules targets every entry of the module list.
	FieldModules = models.KeyModules

	// FieldCSS targets every entry of the stylesheet list.
	FieldCSS = models.KeyCSS

	// FieldRouteRules targets the patterns of the route-rule mapping.
	FieldRouteRules = models.KeyRouteRules

	// FieldCompatibilityDate targets the YYYY-MM-DD compatibility pin.
	FieldCompatibilityDate = models.KeyCompatibilityDate

	// FieldPrerenderRoutes targets every extra prerender route.
	FieldPrerenderRoutes = models.KeyPrerenderRoutes
)

const dateLayout = "2006-01-02"

var defaultFields = []string{
	FieldBasePath,
	FieldPreset,
	FieldModules,
	FieldCSS,
	FieldRouteRules,
	FieldCompatibilityDate,
	FieldPrerenderRoutes,
}

// ConfigurationValidator checks the format contract of each recognized field
// that is present in a [models.Configuration]. Absent fields always pass.
type ConfigurationValidator struct {
}

// NewConfigurationValidator constructs a new ConfigurationValidator
// and returns it as the Validator interface.
func NewConfigurationValidator() Validator {
	return &ConfigurationValidator{}
}

// Validate accepts models.Configuration, *models.Configuration,
// models.Fragment and *models.Fragment.
//
// Returns ErrUnsupportedType for anything else. The first failing field is
// reported as a *FieldError.
func (v *ConfigurationValidator) Validate(obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Configuration:
		return v.validateConfiguration(value, fields...)
	case *models.Configuration:
		return v.validateConfiguration(*value, fields...)

	case models.Fragment:
		return v.validateConfiguration(value.Config, fields...)
	case *models.Fragment:
		return v.validateConfiguration(value.Config, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigurationValidator) validateConfiguration(cfg models.Configuration, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFields
	}

	for _, f := range fields {
		var err error

		switch f {
		case FieldBasePath:
			err = validateBasePath(cfg.BasePath)
		case FieldPreset:
			if cfg.Preset != nil && !cfg.Preset.IsValid() {
				err = &FieldError{Field: f, Value: cfg.Preset.String(), Err: ErrInvalidPreset}
			}
		case FieldModules:
			err = validateNonEmpty(f, cfg.Modules, ErrEmptyModule)
		case FieldCSS:
			err = validateNonEmpty(f, cfg.CSS, ErrEmptyStylesheet)
		case FieldRouteRules:
			for pattern := range cfg.RouteRules {
				if strings.TrimSpace(pattern) == "" {
					err = &FieldError{Field: f, Value: pattern, Err: ErrEmptyRoutePattern}
					break
				}
			}
		case FieldCompatibilityDate:
			if cfg.CompatibilityDate != nil {
				if _, perr := time.Parse(dateLayout, *cfg.CompatibilityDate); perr != nil {
					err = &FieldError{Field: f, Value: *cfg.CompatibilityDate, Err: ErrInvalidDate}
				}
			}
		case FieldPrerenderRoutes:
			for _, route := range cfg.PrerenderRoutes {
				if !strings.HasPrefix(route, "/") {
					err = &FieldError{Field: f, Value: route, Err: ErrRouteNoLeadingSlash}
					break
				}
			}
		default:
			return ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func validateBasePath(p *string) error {
	if p == nil {
		return nil
	}
	if !strings.HasPrefix(*p, "/") {
		return &FieldError{Field: FieldBasePath, Value: *p, Err: ErrBasePathNoLeadingSlash}
	}
	return nil
}

func validateNonEmpty(field string, values []string, sentinel error) error {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Value: value, Err: sentinel}
		}
	}
	return nil
}
