// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the pipeline stages.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable SHA-256 instances; watch mode hashes every
// rebuild.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes the SHA-256 digest of data using a hasher pulled from the
// pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Digest returns the hex encoded [Hash] of data. It identifies a rendered
// configuration in logs and detects unchanged rebuilds.
func Digest(data []byte) string {
	return hex.EncodeToString(Hash(data))
}
