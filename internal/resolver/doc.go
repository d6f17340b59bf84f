// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver merges an ordered sequence of configuration fragments
// into one effective [models.Configuration].
//
// Fragments are supplied in ascending precedence (defaults first, overrides
// last). Merge rules per field:
//   - scalars (basePath, preset, buildAssetsDir, compatibilityDate, devtools):
//     the last fragment defining the field wins;
//   - lists (modules, css, prerenderRoutes): concatenated in fragment order,
//     duplicates dropped keeping the first occurrence;
//   - style and experimental: shallow key-wise merge;
//   - routeRules: last writer wins per route pattern.
//
// The resolver performs no I/O and never mutates its inputs. The returned
// configuration shares no memory with the fragments and is safe to hand to
// concurrent readers.
package resolver
