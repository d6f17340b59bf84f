// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/pagescfg/internal/config"
	"github.com/MKhiriev/pagescfg/internal/loader"
	"github.com/MKhiriev/pagescfg/internal/logger"
	"github.com/MKhiriev/pagescfg/internal/render"
	"github.com/MKhiriev/pagescfg/internal/resolver"
	"github.com/MKhiriev/pagescfg/internal/utils"
	"github.com/MKhiriev/pagescfg/internal/watcher"
	"github.com/MKhiriev/pagescfg/models"
)

// App runs the load, resolve and render pipeline.
type App struct {
	cfg      *config.StructuredConfig
	loader   *loader.Loader
	resolver *resolver.Resolver
	format   render.Format
	stdout   io.Writer
	logger   *logger.Logger

	// state of the last successful run; only touched from the Run goroutine
	last   *models.Configuration
	digest string
}

// Option customizes an [App].
type Option func(*options)

type options struct {
	stdout  io.Writer
	environ map[string]string
}

// WithStdout sets the writer used when no output file is configured.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stdout = w
		}
	}
}

// WithEnviron replaces the process environment for site overrides.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// New builds an App from the tool configuration.
func New(cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	if err = checkOutputPath(cfg.Output.Path, cfg.Fragments.Paths); err != nil {
		return nil, err
	}

	l := loader.New(loader.Options{
		Paths:        cfg.Fragments.Paths,
		Strict:       cfg.Fragments.Strict,
		EnvPrefix:    cfg.Fragments.EnvPrefix,
		Environ:      o.environ,
		SkipDefaults: cfg.Fragments.SkipDefaults,
		SkipEnv:      cfg.Fragments.SkipEnv,
	}, log.WithComponent("loader"))

	r := resolver.New(
		resolver.WithStrict(cfg.Fragments.Strict),
		resolver.WithLogger(log.WithComponent("resolver")),
	)

	return &App{
		cfg:      cfg,
		loader:   l,
		resolver: r,
		format:   format,
		stdout:   o.stdout,
		logger:   log,
	}, nil
}

// Run resolves the configuration once and writes it out. With watch mode
// enabled it then keeps rebuilding on fragment changes until ctx is done,
// and a failing first build does not stop it.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	err := a.refresh(ctx)
	if !a.cfg.Watch.Enabled {
		return err
	}
	if err != nil {
		a.logger.Error().Err(err).Msg("initial build failed, waiting for changes")
	}

	w, err := watcher.New(a.loader.Paths(), a.cfg.Watch.Debounce, a.logger.WithComponent("watcher"))
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	return w.Watch(ctx, func(ctx context.Context) {
		if err := a.refresh(ctx); err != nil {
			a.logger.Error().Err(err).Msg("rebuild failed, keeping last good output")
		}
	})
}

// Last returns a copy of the most recent successfully resolved
// configuration, or nil before the first success.
func (a *App) Last() *models.Configuration {
	if a.last == nil {
		return nil
	}
	c := a.last.Clone()
	return &c
}

func (a *App) refresh(ctx context.Context) error {
	fragments, err := a.loader.Load()
	if err != nil {
		return err
	}

	cfg, err := a.resolver.Resolve(fragments...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = render.Encode(&buf, cfg, a.format); err != nil {
		return err
	}

	digest := utils.Digest(buf.Bytes())
	if digest == a.digest {
		a.logger.Debug().Str("digest", digest).Msg("effective configuration unchanged")
		a.last = cfg
		return nil
	}

	if err = a.emit(ctx, buf.Bytes()); err != nil {
		return err
	}

	a.last = cfg
	a.digest = digest
	a.logger.Info().
		Int("fragments", len(fragments)).
		Str("format", string(a.format)).
		Str("output", a.outputName()).
		Str("digest", digest).
		Msg("effective configuration written")

	return nil
}

func (a *App) emit(ctx context.Context, data []byte) error {
	if a.cfg.Output.Path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}
	return writeFile(ctx, a.cfg.Output.Path, data)
}

func (a *App) outputName() string {
	if a.cfg.Output.Path == "" {
		return "stdout"
	}
	return a.cfg.Output.Path
}

func checkOutputPath(output string, fragments []string) error {
	if output == "" {
		return nil
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("error resolving output path: %w", err)
	}
	for _, f := range fragments {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("error resolving fragment path: %w", err)
		}
		if abs == out {
			return fmt.Errorf("%w: %s", ErrOutputIsFragment, output)
		}
	}
	return nil
}
