// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-conf-loader/internal/logger"
	"github.com/MKhiriev/go-conf-loader/parsers"
)

// Names of the essential configuration sections resolved at construction.
const (
	CatalogSection     = "catalog"
	ParametersSection  = "parameters"
	CredentialsSection = "credentials"
	LoggingSection     = "logging"
)

// essentialSections lists the sections bootstrapped by New, in load order.
var essentialSections = []string{
	CatalogSection,
	ParametersSection,
	CredentialsSection,
	LoggingSection,
}

// Loader resolves configuration files scattered across the environment
// subdirectories of a single source directory into merged mappings.
//
// Two environments are always active: the base environment (searched first,
// lowest precedence) and the run environment (searched second, overriding).
// Within one directory two files must not define the same top-level key;
// across directories the later directory wins at top-level key granularity.
//
// A Loader is immutable after construction. Every retrieval re-scans the
// filesystem, so concurrent Get calls do not interfere as long as the
// underlying files are not being mutated.
type Loader struct {
	confSource    string
	env           string
	baseEnv       string
	defaultRunEnv string
	runtimeParams map[string]any
	log           *logger.Logger
	registry      *parsers.Registry

	// sections holds the four essential sections resolved once at
	// construction and reused by the Get fast path.
	sections map[string]map[string]any
}

// New constructs a Loader rooted at confSource and bootstraps the four
// essential sections (catalog, parameters, credentials, logging).
//
// A section absent from the filesystem is downgraded to a warning and an
// empty mapping; malformed files and same-directory key collisions found
// during bootstrap remain fatal.
func New(confSource string, opts ...Option) (*Loader, error) {
	if confSource == "" {
		return nil, errors.New("conf source path must not be empty")
	}

	lo := loaderOptions{}
	for _, opt := range opts {
		opt(&lo)
	}

	st, err := newSettingsBuilder().
		withExplicit(lo.settings).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	log := lo.log
	if log == nil {
		log = logger.New("config-loader")
	}

	registry := lo.registry
	if registry == nil {
		registry = parsers.DefaultRegistry()
	}

	l := &Loader{
		confSource:    confSource,
		env:           st.Env,
		baseEnv:       st.BaseEnv,
		defaultRunEnv: st.DefaultRunEnv,
		runtimeParams: lo.runtimeParams,
		log:           log,
		registry:      registry,
		sections:      make(map[string]map[string]any, len(essentialSections)),
	}

	for _, section := range essentialSections {
		if provided := lo.sections[section]; len(provided) > 0 {
			l.sections[section] = provided
			continue
		}

		cfg, err := l.EssentialConfig(section)
		if err != nil {
			return nil, fmt.Errorf("error loading %s config: %w", section, err)
		}
		l.sections[section] = cfg
	}

	return l, nil
}

// Get returns the merged configuration for the given glob patterns.
//
// When called with exactly one pattern naming an essential section (e.g.
// "catalog") whose pre-resolved mapping is non-empty, that mapping is
// returned directly without touching the filesystem. In every other case the
// patterns are expanded against the resolved configuration directories and
// the matches merged.
//
// Zero matches across all directories is a *MissingConfigError; a top-level
// key defined twice within one directory is a *DuplicateKeyError; an
// unreadable or malformed file is a *parsers.ParseError.
func (l *Loader) Get(patterns ...string) (map[string]any, error) {
	if len(patterns) == 1 {
		if cached, ok := l.sections[patterns[0]]; ok && len(cached) > 0 {
			return cached, nil
		}
	}

	return aggregate(l.registry, l.ConfPaths(), patterns)
}

// EssentialConfig resolves one of the well-known configuration sections.
// When no patterns are supplied, the defaults match files starting with the
// section name at the top level, inside a same-named subdirectory tree, or
// nested anywhere.
//
// The sections are commonly optional (a project may have no credentials
// file), so a missing-configuration condition is downgraded to a warning and
// an empty mapping. Parse errors and duplicate-key conflicts still
// propagate: malformed or conflicting files must halt execution.
func (l *Loader) EssentialConfig(configType string, patterns ...string) (map[string]any, error) {
	if len(patterns) == 0 {
		patterns = []string{
			configType + "*",
			configType + "*/**",
			"**/" + configType + "*",
		}
	}

	cfg, err := aggregate(l.registry, l.ConfPaths(), patterns)
	if err != nil {
		var missing *MissingConfigError
		if errors.As(err, &missing) {
			l.log.Warn().
				Str("section", configType).
				Strs("conf_paths", missing.ConfPaths).
				Msgf("no %s config found, continuing with an empty one", configType)
			return map[string]any{}, nil
		}
		return nil, err
	}

	return cfg, nil
}

// ConfPaths returns the ordered, deduplicated configuration directories:
// the base environment directory first, then the run environment directory.
func (l *Loader) ConfPaths() []string {
	runEnv := l.env
	if runEnv == "" {
		runEnv = l.defaultRunEnv
	}
	return confPaths(l.confSource, l.baseEnv, runEnv)
}

// RuntimeParams returns the extra key/value overrides supplied at
// construction. They are carried for downstream consumers and never merged
// into file-based configuration.
func (l *Loader) RuntimeParams() map[string]any {
	return l.runtimeParams
}
