package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MKhiriev/go-conf-loader/parsers"
)

// aggregate expands patterns against every resolved configuration directory
// in order and merges the results.
//
// Within one directory all matched files are merged into a single mapping;
// a top-level key produced by two files of the same directory is a fatal
// *DuplicateKeyError. Across directories the per-directory mappings are
// overlaid in resolution order, so a key present in several directories
// resolves to the value from the directory latest in the order (full replace
// at top-level key granularity, no deep merge).
//
// When zero files matched across all directories a *MissingConfigError is
// returned.
func aggregate(reg *parsers.Registry, confPaths, patterns []string) (map[string]any, error) {
	aggregated := map[string]any{}
	processed := 0

	for _, dir := range confPaths {
		merged, n, err := mergeDir(reg, dir, patterns)
		if err != nil {
			return nil, err
		}

		processed += n
		for k, v := range merged {
			aggregated[k] = v
		}
	}

	if processed == 0 {
		return nil, &MissingConfigError{Patterns: patterns, ConfPaths: confPaths}
	}

	return aggregated, nil
}

// mergeDir parses every file under dir matching the patterns and merges the
// parsed mappings, rejecting duplicate top-level keys. It returns the merged
// mapping and the number of files processed. A nonexistent dir contributes
// nothing.
func mergeDir(reg *parsers.Registry, dir string, patterns []string) (map[string]any, int, error) {
	files, err := discoverFiles(reg, dir, patterns)
	if err != nil {
		return nil, 0, err
	}

	merged := make(map[string]any)
	// definedIn tracks which file produced each top-level key so collisions
	// can name both offenders.
	definedIn := make(map[string]string)

	for _, file := range files {
		parsed, err := parsers.ParseFile(reg, file)
		if err != nil {
			return nil, 0, err
		}

		for _, key := range sortedKeys(parsed) {
			if prev, ok := definedIn[key]; ok {
				return nil, 0, &DuplicateKeyError{Key: key, Files: [2]string{prev, file}}
			}
			definedIn[key] = file
			merged[key] = parsed[key]
		}
	}

	return merged, len(files), nil
}

// discoverFiles expands the glob patterns relative to dir and returns the
// sorted, deduplicated matches whose extension has a registered parser.
// Patterns use slash separators and support recursive "**" segments.
func discoverFiles(reg *parsers.Registry, dir string, patterns []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	fsys := os.DirFS(dir)
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid config pattern %q: %w", pattern, err)
		}

		for _, rel := range matches {
			file := filepath.Join(dir, filepath.FromSlash(rel))
			if !reg.Supports(file) {
				continue
			}
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}

	sort.Strings(files)
	return files, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
