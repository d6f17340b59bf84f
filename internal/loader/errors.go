// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

var (
	// ErrMultipleDocuments is returned when a fragment file holds more than one
	// YAML document or trailing content after the first one.
	ErrMultipleDocuments = errors.New("fragment file contains multiple documents")

	// ErrEmptyPath is returned for a blank fragment file path.
	ErrEmptyPath = errors.New("fragment file path is empty")
)
