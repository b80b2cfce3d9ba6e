package seed

import (
	"strings"

	"github.com/openfooty/openfooty-data/internal/provider"
	"github.com/openfooty/openfooty-data/internal/reconcile"
)

// MatchSquadMember finds the fantasy roster player a structured squad entry
// refers to. The search is roster-scoped, so the policy can be stricter than
// general name matching: an exact full-name hit first, then a first/last
// name comparison. A result is accepted only when exactly one roster player
// qualifies; an ambiguous name matches nobody.
func MatchSquadMember(member provider.SquadMember, roster []provider.Player) (int, bool) {
	name := reconcile.Transliterate(member.Name)

	var hits []int
	for i, p := range roster {
		if reconcile.Similarity(name, p.Name) == 1.0 {
			hits = append(hits, i)
		}
	}
	if len(hits) == 1 {
		return hits[0], true
	}
	if len(hits) > 1 {
		return 0, false
	}

	first, last := splitName(name)
	for i, p := range roster {
		if last != "" && reconcile.Similarity(last, p.LastName) < reconcile.PlayerThreshold {
			continue
		}
		if reconcile.Similarity(first, p.FirstName) >= reconcile.PlayerThreshold ||
			reconcile.Similarity(first, p.WebName) >= reconcile.PlayerThreshold {
			hits = append(hits, i)
		}
	}
	if len(hits) == 1 {
		return hits[0], true
	}
	return 0, false
}

// EnrichFromSquad copies identity attributes from a structured squad onto
// the fantasy roster players they uniquely match. Returns the number of
// players enriched.
func EnrichFromSquad(roster []provider.Player, squad []provider.SquadMember) int {
	enriched := 0
	for _, member := range squad {
		i, ok := MatchSquadMember(member, roster)
		if !ok {
			continue
		}
		p := &roster[i]
		if member.DateOfBirth != "" {
			p.DateOfBirth = member.DateOfBirth
		}
		if member.Nationality != "" {
			p.Nationality = member.Nationality
		}
		if member.ShirtNumber != 0 {
			p.ShirtNumber = member.ShirtNumber
		}
		if p.Position == "" {
			p.Position = member.Position
		}
		enriched++
	}
	return enriched
}

// splitName separates a display name into its first token and remainder.
// Single-token names come back with an empty last part.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
