package engine

import (
	"path/filepath"
	"strings"
)

// normalizePath produces the deduplication key for an install path:
// relative segments resolved, separators unified, case folded for
// case-insensitive filesystems.
func normalizePath(path string) string {
	cleaned := filepath.Clean(strings.ReplaceAll(path, "\\", "/"))
	return strings.ToLower(cleaned)
}

// dedupeInstallations collapses candidates that point at the same location.
// Input order is probe-priority order, then list order within each probe;
// the first occurrence per normalized path wins and output order is stable,
// since it is the tie break before version sorting.
func dedupeInstallations(installs []Installation) []Installation {
	seen := make(map[string]struct{}, len(installs))
	out := make([]Installation, 0, len(installs))
	for _, install := range installs {
		key := normalizePath(install.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, install)
	}
	return out
}
