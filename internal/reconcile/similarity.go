// Package reconcile implements the cross-source entity reconciliation
// engine: name similarity scoring, pairwise candidate matching, and the
// driver that merges provider records into unified ones.
package reconcile

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity thresholds used throughout the system.
const (
	// TeamThreshold applies to competition and team name matching.
	TeamThreshold = 0.9
	// PlayerThreshold applies to player first-name and web-name matching,
	// looser because fantasy providers often expose only a nickname.
	PlayerThreshold = 0.8
)

// stopwords are organization abbreviations removed before comparison.
// Whole tokens only, never substrings.
var stopwords = map[string]struct{}{
	"fifa": {},
	"uefa": {},
	"afc":  {},
	"fc":   {},
	"cf":   {},
	"sl":   {},
}

// cleanName lowercases a name, strips stopword tokens, and rejoins the
// remainder with single spaces.
func cleanName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	kept := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Similarity scores how likely two human-entered names denote the same
// entity, in [0,1]. Tiers:
//
//	1.0  — cleaned strings are equal
//	0.99 — the shorter cleaned string is contained in the longer one
//	else — Levenshtein ratio (1 - distance/maxLen) of the cleaned strings
//
// The containment tier replaces the upstream regex check with a true
// substring test; it deliberately sits between "exact" and "computed
// distance" so that near-duplicate containment clears the 0.9 threshold.
func Similarity(a, b string) float64 {
	ca, cb := cleanName(a), cleanName(b)
	if ca == cb {
		return 1.0
	}
	if ca == "" || cb == "" {
		return 0.0
	}
	short, long := ca, cb
	if len(short) > len(long) {
		short, long = long, short
	}
	if strings.Contains(long, short) {
		return 0.99
	}
	return levenshteinRatio(ca, cb)
}

// levenshteinRatio returns 1 - editDistance/maxRuneLen.
func levenshteinRatio(a, b string) float64 {
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

// nameContains reports whether the enriching provider's team name is
// contained in the structured provider's name, case-insensitively on
// cleaned forms. The direction is fixed: "Bayern" (live-score) is contained
// in "FC Bayern München" (structured), not the reverse.
func nameContains(structured, enriching string) bool {
	cs, ce := cleanName(structured), cleanName(enriching)
	if ce == "" {
		return false
	}
	return strings.Contains(cs, ce)
}
