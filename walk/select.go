package walk

import (
	"path/filepath"
	"sort"
	"strings"
)

// Select picks the authoritative annotation file among the file names of a
// document folder.
//
// A file matching one of the curated patterns wins over one matching the
// initial capture patterns; otherwise the first file with the annotation
// extension is taken. Inside a class the lexicographically first name
// wins. ok is false when no file qualifies.
func Select(files []string, cfg Config) (name string, ok bool) {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	if name, ok := firstMatch(sorted, cfg.Curated); ok {
		return name, true
	}

	if name, ok := firstMatch(sorted, cfg.Initial); ok {
		return name, true
	}

	for _, f := range sorted {
		if cfg.Extension != "" && strings.HasSuffix(f, cfg.Extension) {
			return f, true
		}
	}

	return "", false
}

func firstMatch(sorted, patterns []string) (string, bool) {
	for _, f := range sorted {
		for _, p := range patterns {
			if matched, err := filepath.Match(p, f); err == nil && matched {
				return f, true
			}
		}
	}
	return "", false
}
