// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known fragment sources.
const (
	SourceDefaults = "defaults"
	SourceEnv      = "env"
)

// Fragment is one partial configuration contributing some subset of the
// recognized fields, together with a label naming where it came from
// (a file path, "env", "defaults").
type Fragment struct {
	Source string
	Config Configuration
}

// NewFragment constructs a [Fragment] from source and cfg.
func NewFragment(source string, cfg Configuration) Fragment {
	return Fragment{Source: source, Config: cfg}
}
