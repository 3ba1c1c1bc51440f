// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-loader/internal/logger"
	"github.com/MKhiriev/go-conf-loader/parsers"
)

// settings holds the environment-selection knobs of a Loader. It is
// assembled by merging layers in priority order (explicit options, then
// CONF_* environment variables, then package defaults).
type settings struct {
	// Env is the run environment overriding the base layer.
	// Env var: CONF_ENV
	Env string `env:"CONF_ENV"`

	// BaseEnv is the name of the always-searched lowest-precedence layer.
	// Env var: CONF_BASE_ENV
	BaseEnv string `env:"CONF_BASE_ENV"`

	// DefaultRunEnv is the run environment used when Env is empty.
	// Env var: CONF_DEFAULT_RUN_ENV
	DefaultRunEnv string `env:"CONF_DEFAULT_RUN_ENV"`
}

func defaultSettings() settings {
	return settings{
		BaseEnv:       "base",
		DefaultRunEnv: "local",
	}
}

// settingsBuilder accumulates settings layers and merges them with mergo.
// Layers are applied in the order they are added; a later layer only fills
// fields still unset by earlier layers, so the first layer has the highest
// priority.
type settingsBuilder struct {
	layers []settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{layers: make([]settings, 0, 3)}
}

func (b *settingsBuilder) build() (settings, error) {
	if b.err != nil {
		return settings{}, fmt.Errorf("error occured during building loader settings: %w", b.err)
	}

	merged := settings{}
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, layer); err != nil {
			return settings{}, fmt.Errorf("error merging loader settings: %w", err)
		}
	}

	return merged, nil
}

func (b *settingsBuilder) withExplicit(s settings) *settingsBuilder {
	b.layers = append(b.layers, s)
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := settings{}
	if err := env.Parse(&envCfg); err != nil {
		b.err = fmt.Errorf("error getting env configs: %w", err)
		return b
	}

	b.layers = append(b.layers, envCfg)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, defaultSettings())
	return b
}

// loaderOptions collects everything configurable at construction time.
type loaderOptions struct {
	settings      settings
	runtimeParams map[string]any
	log           *logger.Logger
	registry      *parsers.Registry
	sections      map[string]map[string]any
}

// Option configures a Loader during construction.
type Option func(*loaderOptions)

// WithEnv selects the run environment, overriding both the default run
// environment and the CONF_ENV environment variable.
func WithEnv(envName string) Option {
	return func(o *loaderOptions) { o.settings.Env = envName }
}

// WithBaseEnv overrides the name of the base environment (default "base").
func WithBaseEnv(baseEnv string) Option {
	return func(o *loaderOptions) { o.settings.BaseEnv = baseEnv }
}

// WithDefaultRunEnv overrides the run environment used when no explicit
// environment is selected (default "local").
func WithDefaultRunEnv(runEnv string) Option {
	return func(o *loaderOptions) { o.settings.DefaultRunEnv = runEnv }
}

// WithRuntimeParams attaches extra key/value overrides supplied by the
// caller. They are held on the loader for downstream consumers and are never
// merged into file-based configuration.
func WithRuntimeParams(params map[string]any) Option {
	return func(o *loaderOptions) { o.runtimeParams = params }
}

// WithLogger routes loader log output (such as missing-section warnings)
// through the given zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *loaderOptions) { o.log = logger.Wrap(l) }
}

// WithParsers replaces the default format parser registry, e.g. to register
// an additional file format.
func WithParsers(r *parsers.Registry) Option {
	return func(o *loaderOptions) { o.registry = r }
}

// WithCatalog pre-supplies the catalog section. When non-empty it bypasses
// filesystem discovery for that section entirely.
func WithCatalog(cfg map[string]any) Option {
	return withSection(CatalogSection, cfg)
}

// WithParameters pre-supplies the parameters section. When non-empty it
// bypasses filesystem discovery for that section entirely.
func WithParameters(cfg map[string]any) Option {
	return withSection(ParametersSection, cfg)
}

// WithCredentials pre-supplies the credentials section. When non-empty it
// bypasses filesystem discovery for that section entirely.
func WithCredentials(cfg map[string]any) Option {
	return withSection(CredentialsSection, cfg)
}

// WithLogging pre-supplies the logging section. When non-empty it bypasses
// filesystem discovery for that section entirely.
func WithLogging(cfg map[string]any) Option {
	return withSection(LoggingSection, cfg)
}

func withSection(name string, cfg map[string]any) Option {
	return func(o *loaderOptions) {
		if o.sections == nil {
			o.sections = make(map[string]map[string]any, 4)
		}
		o.sections[name] = cfg
	}
}
