package scenario

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

const maxSuggestDistance = 3

// PatternTypes lists the accepted pattern type identifiers in lexical order.
func PatternTypes() []string {
	names := make([]string, 0, len(patternTypes))
	for name := range patternTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// closest returns the candidate nearest to value by edit distance, or "" when
// none is within maxSuggestDistance. Ties go to the lexically first candidate.
func closest(value string, candidates []string) string {
	if value == "" {
		return ""
	}

	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range sorted {
		if dist := levenshtein.ComputeDistance(value, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

func withSuggestion(msg, value string, candidates []string) string {
	if s := closest(value, candidates); s != "" {
		return fmt.Sprintf("%s; did you mean %q?", msg, s)
	}
	return msg
}
