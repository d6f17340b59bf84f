// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/MKhiriev/pagescfg/internal/logger"
)

// writeFile replaces path atomically, so readers never see a partial
// configuration and a failed write keeps the previous file. Missing parent
// directories are created.
func writeFile(ctx context.Context, path string, data []byte) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	if _, err = pendingFile.Write(data); err != nil {
		return fmt.Errorf("write output data: %w", err)
	}

	if err = pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace output file: %w", err)
	}

	return nil
}
