// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/pagescfg/internal/app"
	"github.com/MKhiriev/pagescfg/internal/config"
	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "pagescfg: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Print(buildInfo.String())
		return 0
	}

	// validated by GetStructuredConfig
	level, _ := logger.ParseLevel(cfg.Log.Level)
	log := logger.NewLogger("pagescfg", level)

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating app")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("error resolving configuration")
		return 1
	}

	return 0
}
