package reconcile

import (
	"github.com/openfooty/openfooty-data/internal/provider"
)

// bestCandidate finds the candidate name with the highest similarity to
// name at or above threshold. Resolution is greedy: highest score wins and
// ties go to the first occurrence in candidate order. This preserves the
// documented "best match wins, first seen breaks ties" policy rather than
// computing a globally optimal assignment.
func bestCandidate(name string, candidates []string, threshold float64) (int, float64, bool) {
	bestIdx, bestScore := -1, 0.0
	for i, c := range candidates {
		score := Similarity(name, c)
		if score >= threshold && score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore, bestIdx >= 0
}

// matchCompetition pairs a structured competition against live-score
// candidates. The location string is a secondary key: it must clear the
// same threshold as the name before a pairing is accepted.
func matchCompetition(target provider.Competition, candidates []provider.Competition) (int, bool) {
	bestIdx, bestScore := -1, 0.0
	for i, c := range candidates {
		nameScore := Similarity(target.Name, c.Name)
		if nameScore < TeamThreshold {
			continue
		}
		if Similarity(target.Location, c.Location) < TeamThreshold {
			continue
		}
		if nameScore > bestScore {
			bestIdx, bestScore = i, nameScore
		}
	}
	return bestIdx, bestIdx >= 0
}

// matchTeam pairs a structured team name against candidate teams by name
// similarity alone.
func matchTeam(name string, candidates []provider.Team) (int, bool) {
	names := make([]string, len(candidates))
	for i, t := range candidates {
		names[i] = t.Name
	}
	idx, _, ok := bestCandidate(name, names, TeamThreshold)
	return idx, ok
}

// scoreEqual reports whether both scores are present and equal. A missing
// score on either side never satisfies the match rule.
func scoreEqual(a, b *int) bool {
	return a != nil && b != nil && *a == *b
}

// sameFixture is the match secondary-key rule: the enriching side's home
// and away names must be contained in the structured names, and the
// full-time scores must be exactly equal on both sides.
func sameFixture(structured, enriching provider.Match, homeName, awayName string) bool {
	if !nameContains(structured.HomeTeam, homeName) || !nameContains(structured.AwayTeam, awayName) {
		return false
	}
	return scoreEqual(structured.FullTimeHome, enriching.FullTimeHome) &&
		scoreEqual(structured.FullTimeAway, enriching.FullTimeAway)
}

// matchLiveScoreMatch finds the live-score candidate describing the same
// fixture as the structured match. First acceptable candidate wins.
func matchLiveScoreMatch(target provider.Match, candidates []provider.Match) (int, bool) {
	for i, c := range candidates {
		if sameFixture(target, c, c.HomeTeam, c.AwayTeam) {
			return i, true
		}
	}
	return -1, false
}

// matchFantasyMatch finds the fantasy fixture describing the same fixture
// as the structured match. Fantasy fixtures carry numeric team IDs, so
// teamNames resolves IDs to display names (alias-corrected) before the
// containment check. Acceptance additionally requires gameweek equality
// and kickoff-timestamp equality.
func matchFantasyMatch(target provider.Match, candidates []provider.Match, teamNames map[int]string) (int, bool) {
	for i, c := range candidates {
		if c.FantasyGameWeek != target.Matchday {
			continue
		}
		if !c.UTCDate.Equal(target.UTCDate) {
			continue
		}
		homeName, okHome := teamNames[c.FantasyHomeTeamID]
		awayName, okAway := teamNames[c.FantasyAwayTeamID]
		if !okHome || !okAway {
			continue
		}
		if sameFixture(target, c, homeName, awayName) {
			return i, true
		}
	}
	return -1, false
}
