// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader turns the raw configuration sources into fragments ready
// for the resolver, in ascending precedence:
//  1. Built-in defaults
//  2. Fragment files (YAML or JSON), in the order given
//  3. Environment variables
//
// The loader owns all I/O; the resolver only sees in-memory fragments.
package loader
