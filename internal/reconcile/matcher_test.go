package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfooty/openfooty-data/internal/provider"
)

func intp(n int) *int { return &n }

func TestBestCandidateFirstSeenTieBreak(t *testing.T) {
	// Two identical candidates clear the threshold with equal scores; the
	// first occurrence must win.
	idx, score, ok := bestCandidate("Everton", []string{"Everton", "Everton"}, TeamThreshold)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, score)
}

func TestBestCandidateHighestWins(t *testing.T) {
	idx, _, ok := bestCandidate("Manchester United", []string{
		"Manchester City",
		"Manchester United FC",
	}, TeamThreshold)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestBestCandidateBelowThreshold(t *testing.T) {
	_, _, ok := bestCandidate("Juventus", []string{"Burnley", "Watford"}, TeamThreshold)
	assert.False(t, ok)
}

func TestMatchCompetitionRequiresLocation(t *testing.T) {
	target := provider.Competition{Name: "Premier League", Location: "England", FootballDataID: 2021}
	candidates := []provider.Competition{
		{Name: "Premier League", Location: "Russia", LiveScoreID: 9},
		{Name: "Premier League", Location: "England", LiveScoreID: 2},
	}

	idx, ok := matchCompetition(target, candidates)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, candidates[idx].LiveScoreID)
}

func TestMatchCompetitionNoCandidates(t *testing.T) {
	target := provider.Competition{Name: "Premier League", Location: "England"}
	_, ok := matchCompetition(target, nil)
	assert.False(t, ok)
}

func TestSameFixtureScoresMustAgree(t *testing.T) {
	structured := provider.Match{
		HomeTeam: "FC Bayern München", AwayTeam: "TSG 1899 Hoffenheim",
		FullTimeHome: intp(3), FullTimeAway: intp(1),
	}
	assert.True(t, sameFixture(structured, provider.Match{
		FullTimeHome: intp(3), FullTimeAway: intp(1),
	}, "Bayern", "Hoffenheim"))

	assert.False(t, sameFixture(structured, provider.Match{
		FullTimeHome: intp(3), FullTimeAway: intp(2),
	}, "Bayern", "Hoffenheim"))

	// Missing score on the enriching side never satisfies the rule.
	assert.False(t, sameFixture(structured, provider.Match{
		FullTimeHome: intp(3),
	}, "Bayern", "Hoffenheim"))

	// Wrong side containment.
	assert.False(t, sameFixture(structured, provider.Match{
		FullTimeHome: intp(3), FullTimeAway: intp(1),
	}, "Hoffenheim", "Bayern"))
}

func TestMatchFantasyMatchAlignment(t *testing.T) {
	kickoff := time.Date(2018, 8, 24, 18, 30, 0, 0, time.UTC)
	target := provider.Match{
		HomeTeam: "FC Bayern München", AwayTeam: "TSG 1899 Hoffenheim",
		FullTimeHome: intp(3), FullTimeAway: intp(1),
		UTCDate:  kickoff,
		Matchday: 1,
	}
	fixtures := []provider.Match{
		{ // wrong gameweek
			FantasyGameWeek: 2, UTCDate: kickoff,
			FantasyHomeTeamID: 1, FantasyAwayTeamID: 2,
			FullTimeHome: intp(3), FullTimeAway: intp(1),
			FantasyMatchCode: 100,
		},
		{ // wrong kickoff
			FantasyGameWeek: 1, UTCDate: kickoff.Add(time.Hour),
			FantasyHomeTeamID: 1, FantasyAwayTeamID: 2,
			FullTimeHome: intp(3), FullTimeAway: intp(1),
			FantasyMatchCode: 101,
		},
		{ // correct
			FantasyGameWeek: 1, UTCDate: kickoff,
			FantasyHomeTeamID: 1, FantasyAwayTeamID: 2,
			FullTimeHome: intp(3), FullTimeAway: intp(1),
			FantasyMatchCode: 102,
		},
	}
	names := map[int]string{1: "Bayern", 2: "Hoffenheim"}

	idx, ok := matchFantasyMatch(target, fixtures, names)
	assert.True(t, ok)
	assert.Equal(t, 102, fixtures[idx].FantasyMatchCode)
}

func TestMatchFantasyMatchUnresolvableTeam(t *testing.T) {
	target := provider.Match{
		HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		FullTimeHome: intp(1), FullTimeAway: intp(1),
		UTCDate:  time.Date(2019, 1, 1, 15, 0, 0, 0, time.UTC),
		Matchday: 21,
	}
	fixtures := []provider.Match{{
		FantasyGameWeek: 21, UTCDate: target.UTCDate,
		FantasyHomeTeamID: 1, FantasyAwayTeamID: 6,
		FullTimeHome: intp(1), FullTimeAway: intp(1),
	}}

	_, ok := matchFantasyMatch(target, fixtures, map[int]string{1: "Arsenal"})
	assert.False(t, ok)
}
