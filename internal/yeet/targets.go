package yeet

import "strings"

const DefaultTarget = "node_modules"

// EverythingTargets is what --everything goes after.
var EverythingTargets = []string{
	"node_modules", ".next", "dist", "build",
	".cache", "coverage", ".turbo", ".parcel-cache",
}

// ResolveTargets picks the directory names to scan. --everything wins over
// explicit names and appends extra; with neither, node_modules is the
// target. Names are kept in order and not deduplicated.
func ResolveTargets(names []string, everything bool, extra []string) []string {
	if everything {
		out := append([]string{}, EverythingTargets...)
		return append(out, cleanNames(extra)...)
	}
	if cleaned := cleanNames(names); len(cleaned) > 0 {
		return cleaned
	}
	return []string{DefaultTarget}
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimRight(strings.TrimSpace(n), "/")
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// HasTarget reports whether name is among targets.
func HasTarget(targets []Target, name string) bool {
	for _, t := range targets {
		if t.Name == name {
			return true
		}
	}
	return false
}
