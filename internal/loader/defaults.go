// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "github.com/MKhiriev/pagescfg/models"

// Built-in default values. They match what the host framework assumes when
// nothing is configured, with the static preset a pages host needs.
const (
	DefaultBasePath       = "/"
	DefaultPreset         = models.PresetStatic
	DefaultBuildAssetsDir = "_nuxt"
)

// Defaults returns the lowest-precedence fragment.
func Defaults() models.Fragment {
	return models.NewFragment(models.SourceDefaults, models.Configuration{
		BasePath:       models.Ptr(DefaultBasePath),
		Preset:         models.Ptr(DefaultPreset),
		BuildAssetsDir: models.Ptr(DefaultBuildAssetsDir),
	})
}
