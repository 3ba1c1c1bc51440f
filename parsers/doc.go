// Package parsers turns configuration file bytes into string-keyed mappings.
//
// Each supported file format is implemented as a separate [Parser] variant.
// A [Registry] maps file extensions to parser variants; new formats are added
// by registering a new variant rather than by extending branching logic.
//
// Every parser enforces the same contract: the top-level content of a
// configuration file must be a mapping from string keys to arbitrary values.
// Files whose top-level content is a list, a scalar, or a non-string-keyed
// mapping fail with a [ParseError].
package parsers
