package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfooty/openfooty-data/internal/provider"
)

func testRoster() []provider.Player {
	return []provider.Player{
		{FantasyID: 1, Name: "Harry Kane", FirstName: "Harry", LastName: "Kane", WebName: "Kane"},
		{FantasyID: 2, Name: "Heung-Min Son", FirstName: "Heung-Min", LastName: "Son", WebName: "Son"},
		{FantasyID: 3, Name: "Hugo Lloris", FirstName: "Hugo", LastName: "Lloris", WebName: "Lloris"},
	}
}

func TestMatchSquadMemberExactName(t *testing.T) {
	i, ok := MatchSquadMember(provider.SquadMember{Name: "Harry Kane"}, testRoster())
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestMatchSquadMemberAccentedName(t *testing.T) {
	// Structured rosters carry diacritics; fantasy names are folded.
	roster := []provider.Player{
		{FantasyID: 9, Name: "Sergio Aguero", FirstName: "Sergio", LastName: "Aguero", WebName: "Aguero"},
	}
	i, ok := MatchSquadMember(provider.SquadMember{Name: "Sergio Agüero"}, roster)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestMatchSquadMemberFirstLastFallback(t *testing.T) {
	roster := []provider.Player{
		{FantasyID: 4, Name: "Bamidele Alli", FirstName: "Bamidele", LastName: "Alli", WebName: "Dele"},
	}
	i, ok := MatchSquadMember(provider.SquadMember{Name: "Dele Alli"}, roster)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestMatchSquadMemberAmbiguousMatchesNobody(t *testing.T) {
	roster := []provider.Player{
		{FantasyID: 5, Name: "James Ward", FirstName: "James", LastName: "Ward", WebName: "Ward"},
		{FantasyID: 6, Name: "James Ward", FirstName: "James", LastName: "Ward", WebName: "Ward"},
	}
	_, ok := MatchSquadMember(provider.SquadMember{Name: "James Ward"}, roster)
	assert.False(t, ok)
}

func TestMatchSquadMemberUnknownName(t *testing.T) {
	_, ok := MatchSquadMember(provider.SquadMember{Name: "Lionel Messi"}, testRoster())
	assert.False(t, ok)
}

func TestEnrichFromSquad(t *testing.T) {
	roster := testRoster()
	squad := []provider.SquadMember{
		{Name: "Harry Kane", DateOfBirth: "1993-07-28", Nationality: "England", ShirtNumber: 10, Position: "Attacker"},
		{Name: "Lionel Messi", DateOfBirth: "1987-06-24"}, // not on this roster
	}

	enriched := EnrichFromSquad(roster, squad)

	assert.Equal(t, 1, enriched)
	assert.Equal(t, "1993-07-28", roster[0].DateOfBirth)
	assert.Equal(t, "England", roster[0].Nationality)
	assert.Equal(t, 10, roster[0].ShirtNumber)
	assert.Equal(t, "Attacker", roster[0].Position)
	assert.Empty(t, roster[1].DateOfBirth)
}

func TestEnrichFromSquadKeepsExistingPosition(t *testing.T) {
	roster := []provider.Player{
		{FantasyID: 1, Name: "Harry Kane", FirstName: "Harry", LastName: "Kane", WebName: "Kane", Position: "Forward"},
	}
	squad := []provider.SquadMember{{Name: "Harry Kane", Position: "Attacker"}}

	EnrichFromSquad(roster, squad)

	assert.Equal(t, "Forward", roster[0].Position)
}

func TestSeedResultSummary(t *testing.T) {
	var r SeedResult
	r.CompetitionsUpserted = 1
	r.TeamsUpserted = 20
	r.AddErrorf("upsert team %d: boom", 7)

	assert.Equal(t, "competitions=1 teams=20 matches=0 players=0 errors=1", r.Summary())

	var total SeedResult
	total.Add(r)
	assert.Equal(t, 20, total.TeamsUpserted)
	assert.Len(t, total.Errors, 1)
}
