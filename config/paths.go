package config

import "path/filepath"

// confPaths computes the ordered list of configuration directories to
// search: the base environment directory first, then the run environment
// directory. The result is deduplicated preserving first occurrence, so when
// the run environment equals the base environment only one directory is
// returned.
//
// Pure path-string computation: no I/O is performed and nonexistent
// directories are not rejected here; absence is handled at discovery time.
func confPaths(confSource, baseEnv, runEnv string) []string {
	return dedupPaths([]string{
		filepath.Join(confSource, baseEnv),
		filepath.Join(confSource, runEnv),
	})
}

// dedupPaths removes duplicate entries preserving first-seen order.
func dedupPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
