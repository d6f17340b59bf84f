// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build windows

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/pagescfg/internal/logger"
)

// writeFile writes to a temp file next to path and renames it into place.
// Missing parent directories are created.
func writeFile(ctx context.Context, path string, data []byte) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".pagescfg-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output file: %w", err)
	}
	tmpPath := tmpFile.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		tmpFile.Close()
		if err := os.Remove(tmpPath); err != nil {
			log.Debug().Err(err).Msg("cleanup temp output file")
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("write output data: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp output file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace output file: %w", err)
	}
	committed = true

	return nil
}
