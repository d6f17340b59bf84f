// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutputPreset selects how the host framework produces the site.
type OutputPreset string

const (
	// PresetStatic pre-generates every page into plain files for a pages host.
	PresetStatic OutputPreset = "static"

	// PresetServer builds a server bundle that renders pages on request.
	PresetServer OutputPreset = "server"
)

// IsValid reports whether p is one of the known presets.
func (p OutputPreset) IsValid() bool {
	switch p {
	case PresetStatic, PresetServer:
		return true
	default:
		return false
	}
}

func (p OutputPreset) String() string {
	return string(p)
}
