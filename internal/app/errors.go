// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrOutputIsFragment is returned when the output file is also one of
	// the fragment files, which would feed every write back into the watcher.
	ErrOutputIsFragment = errors.New("output file is also a fragment file")
)
