// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parsers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Parser converts the raw bytes of a configuration file of one specific
// format into a string-keyed mapping.
type Parser interface {
	// Parse decodes data and returns the top-level mapping.
	// The returned error describes the format-level failure; it is wrapped
	// into a [ParseError] with the file path by [ParseFile].
	Parse(data []byte) (map[string]any, error)
}

// Registry maps file extensions (with leading dot, lower case) to parser
// variants.
type Registry struct {
	byExt map[string]Parser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Parser)}
}

// DefaultRegistry returns a registry pre-populated with all supported
// formats: yaml/yml, json, ini, pickle/pkl, xml and properties.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(YAML{}, ".yaml", ".yml")
	r.Register(JSON{}, ".json")
	r.Register(INI{}, ".ini")
	r.Register(Pickle{}, ".pickle", ".pkl")
	r.Register(XML{}, ".xml")
	r.Register(Properties{}, ".properties")
	return r
}

// Register binds p to the given extensions, replacing any previous binding.
// Extensions are normalized to lower case with a leading dot.
func (r *Registry) Register(p Parser, exts ...string) {
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExt[ext] = p
	}
}

// Lookup returns the parser registered for the extension of path.
func (r *Registry) Lookup(path string) (Parser, bool) {
	p, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return p, ok
}

// Supports reports whether a parser is registered for the extension of path.
func (r *Registry) Supports(path string) bool {
	_, ok := r.Lookup(path)
	return ok
}

// Extensions returns all registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ParseFile reads the file at path and decodes it with the parser registered
// for its extension. Read and decode failures are returned as a [ParseError]
// identifying the file.
func ParseFile(r *Registry, path string) (map[string]any, error) {
	p, ok := r.Lookup(path)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("no parser registered for extension %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg, err := p.Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return cfg, nil
}

// ParseError reports that a configuration file could not be read or decoded.
type ParseError struct {
	// Path is the offending file.
	Path string
	// Err is the underlying read or decode failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
