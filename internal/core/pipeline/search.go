package pipeline

import (
	"regexp"
	"slices"
	"strings"

	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/normalize"
)

var termSplit = regexp.MustCompile(`[,\s;]+`)

// SearchTerms splits a free-text query on commas, whitespace and semicolons
// Terms come back case-folded; an empty query yields no terms
func SearchTerms(query string) []string {
	var out []string
	for _, p := range termSplit.Split(query, -1) {
		if t := normalize.Fold(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Narrow keeps the options matching at least one term as a case-insensitive substring
// The result is sorted and de-duplicated; no terms keeps every option
func Narrow(options []string, terms []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if len(terms) == 0 || matchesAny(normalize.Fold(o), terms) {
			out = append(out, o)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func matchesAny(folded string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(folded, t) {
			return true
		}
	}
	return false
}

// Distinct returns the sorted distinct values of a dimension
func Distinct(records []inspection.Record, d Dimension) []string {
	seen := make(map[string]struct{}, 16)
	out := make([]string, 0, 16)
	for _, r := range records {
		v := d.Value(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
