// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matching with [errors.Is]. The typed errors below
// unwrap to these, so callers can branch on the error kind without keeping
// a reference to the concrete type.
var (
	// ErrMissingConfig indicates that no configuration file matched any of
	// the requested patterns in any resolved configuration directory.
	ErrMissingConfig = errors.New("no configuration files found")
	// ErrDuplicateKey indicates that the same top-level key is defined by
	// two configuration files inside the same configuration directory.
	ErrDuplicateKey = errors.New("duplicate top-level configuration key")
)

// MissingConfigError reports that no file matched the given patterns in any
// of the searched configuration directories.
type MissingConfigError struct {
	// Patterns are the glob patterns that were expanded.
	Patterns []string
	// ConfPaths are the directories that were searched, in resolution order.
	ConfPaths []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf(
		"no files found in %s matching the glob pattern(s) %s",
		strings.Join(e.ConfPaths, ", "), strings.Join(e.Patterns, ", "),
	)
}

func (e *MissingConfigError) Unwrap() error { return ErrMissingConfig }

// DuplicateKeyError reports that two files inside the same configuration
// directory both define the same top-level key. Same-directory collisions
// are never silently resolved.
type DuplicateKeyError struct {
	// Key is the conflicting top-level key.
	Key string
	// Files are the two files that both define Key.
	Files [2]string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf(
		"duplicate key %q found in %s and %s",
		e.Key, e.Files[0], e.Files[1],
	)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
