// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the pagescfg pipeline together.
//
// A single run loads the fragment stack, resolves it into the effective
// configuration and writes it out in the requested format. In watch mode
// the pipeline repeats after every settled change to a fragment file. A
// failed rebuild is logged and the last good output is left untouched.
package app
