package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfooty/openfooty-data/internal/provider"
)

// --------------------------------------------------------------------------
// Fake adapters
// --------------------------------------------------------------------------

type fakeStructured struct {
	comps   []provider.Competition
	teams   []provider.Team
	details map[int]provider.Team
	matches []provider.Match
	err     error
}

func (f *fakeStructured) Competitions(ctx context.Context) ([]provider.Competition, error) {
	return f.comps, f.err
}

func (f *fakeStructured) CompetitionTeams(ctx context.Context, competitionID, season int) ([]provider.Team, error) {
	return f.teams, f.err
}

func (f *fakeStructured) TeamDetail(ctx context.Context, teamID int) (provider.Team, bool, error) {
	d, ok := f.details[teamID]
	return d, ok, nil
}

func (f *fakeStructured) CompetitionMatches(ctx context.Context, competitionID, matchday, season int) ([]provider.Match, error) {
	return f.matches, f.err
}

type fakeLiveScore struct {
	comps      []provider.Competition
	teams      []provider.Team
	matches    []provider.Match
	details    map[int]provider.Match
	windowFrom time.Time
	windowTo   time.Time
	err        error
}

func (f *fakeLiveScore) Competitions(ctx context.Context) ([]provider.Competition, error) {
	return f.comps, f.err
}

func (f *fakeLiveScore) Teams(ctx context.Context, competitionID int) ([]provider.Team, error) {
	return f.teams, f.err
}

func (f *fakeLiveScore) MatchesWindow(ctx context.Context, from, to time.Time) ([]provider.Match, error) {
	f.windowFrom, f.windowTo = from, to
	return f.matches, f.err
}

func (f *fakeLiveScore) MatchDetail(ctx context.Context, matchID int) (provider.Match, bool, error) {
	d, ok := f.details[matchID]
	return d, ok, nil
}

type fakeFantasy struct {
	teams     []provider.Team
	teamNames map[int]string
	matches   []provider.Match
	players   []provider.Player
	details   map[int]provider.Player
	err       error
}

func (f *fakeFantasy) Teams(ctx context.Context) ([]provider.Team, error) {
	return f.teams, f.err
}

func (f *fakeFantasy) TeamName(ctx context.Context, teamID int) (string, bool) {
	name, ok := f.teamNames[teamID]
	return name, ok
}

func (f *fakeFantasy) Matches(ctx context.Context) ([]provider.Match, error) {
	return f.matches, f.err
}

func (f *fakeFantasy) Players(ctx context.Context, teamID int) ([]provider.Player, error) {
	return f.players, f.err
}

func (f *fakeFantasy) PlayerDetail(ctx context.Context, playerID int) (provider.Player, bool, error) {
	d, ok := f.details[playerID]
	return d, ok, nil
}

func newTestDriver(s *fakeStructured, l *fakeLiveScore, f *fakeFantasy) *Driver {
	if s == nil {
		s = &fakeStructured{}
	}
	if l == nil {
		l = &fakeLiveScore{}
	}
	if f == nil {
		f = &fakeFantasy{}
	}
	return New(s, l, f, nil)
}

// --------------------------------------------------------------------------
// Competitions
// --------------------------------------------------------------------------

func TestCompetitionsEnrichment(t *testing.T) {
	s := &fakeStructured{comps: []provider.Competition{
		{Name: "Premier League", Code: "PL", Location: "England", FootballDataID: 2021},
		{Name: "Eredivisie", Code: "DED", Location: "Netherlands", FootballDataID: 2003},
	}}
	l := &fakeLiveScore{comps: []provider.Competition{
		{Name: "Premier League", Location: "England", LiveScoreID: 2},
	}}

	out, res, err := newTestDriver(s, l, nil).Competitions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 2, out[0].LiveScoreID)
	assert.Equal(t, 2021, out[0].FootballDataID)
	// Unmatched competition returned untouched, without a live-score ID.
	assert.Zero(t, out[1].LiveScoreID)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 1, res.Unmatched)
}

func TestCompetitionsIdempotent(t *testing.T) {
	s := &fakeStructured{comps: []provider.Competition{
		{Name: "Serie A", Location: "Italy", FootballDataID: 2019},
		{Name: "Ligue 1", Location: "France", FootballDataID: 2015},
	}}
	l := &fakeLiveScore{comps: []provider.Competition{
		{Name: "Ligue 1", Location: "France", LiveScoreID: 4},
		{Name: "Serie A", Location: "Italy", LiveScoreID: 3},
	}}
	d := newTestDriver(s, l, nil)

	first, _, err := d.Competitions(context.Background())
	require.NoError(t, err)
	second, _, err := d.Competitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompetitionsLiveScoreDown(t *testing.T) {
	s := &fakeStructured{comps: []provider.Competition{
		{Name: "La Liga", Location: "Spain", FootballDataID: 2014},
	}}
	l := &fakeLiveScore{err: errors.New("rate limited")}

	out, res, err := newTestDriver(s, l, nil).Competitions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].LiveScoreID)
	assert.Len(t, res.Errors, 1)
}

func TestCompetitionsStructuredFailureIsFatal(t *testing.T) {
	s := &fakeStructured{err: errors.New("upstream 503")}
	_, _, err := newTestDriver(s, nil, nil).Competitions(context.Background())
	assert.Error(t, err)
}

func TestCompetitionsSkipsMalformed(t *testing.T) {
	s := &fakeStructured{comps: []provider.Competition{
		{Name: "", FootballDataID: 99},
		{Name: "Bundesliga", Location: "Germany", FootballDataID: 2002},
	}}

	out, res, err := newTestDriver(s, nil, nil).Competitions(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, res.Skipped)
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

func TestTeamsUnmatchedIsNotFatal(t *testing.T) {
	s := &fakeStructured{teams: []provider.Team{
		{Name: "Everton FC", FootballDataID: 62},
		{Name: "Watford FC", FootballDataID: 346},
		{Name: "Burnley FC", FootballDataID: 328},
	}}

	out, res, err := newTestDriver(s, &fakeLiveScore{}, &fakeFantasy{}).
		Teams(context.Background(), 2021, 2, 2019)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, team := range out {
		assert.Zero(t, team.LiveScoreID)
		assert.Zero(t, team.FantasyID)
		assert.NotZero(t, team.FootballDataID)
	}
	assert.Equal(t, 3, res.Unmatched)
}

func TestTeamsCrossSourceEnrichment(t *testing.T) {
	s := &fakeStructured{
		teams: []provider.Team{{Name: "Tottenham Hotspur FC", FootballDataID: 73}},
		details: map[int]provider.Team{
			73: {
				Name:    "Tottenham Hotspur FC",
				Contact: provider.Contact{Website: "www.tottenhamhotspur.com"},
				Squad:   []provider.SquadMember{{Name: "Harry Kane", Position: "Attacker"}},
			},
		},
	}
	l := &fakeLiveScore{teams: []provider.Team{{
		Name:        "Tottenham Hotspur",
		LiveScoreID: 20,
		Stadium:     provider.Stadium{Lat: 51.6043, Long: -0.0665, Capacity: 62850},
	}}}
	f := &fakeFantasy{teams: []provider.Team{{
		// Alias-corrected fantasy name, resolved before comparison.
		Name:      "Tottenham Hotspur",
		FantasyID: 17, FantasyCode: 6,
		Strength: &provider.Strength{Overall: 4, AttackHome: 1300},
	}}}

	out, res, err := newTestDriver(s, l, f).Teams(context.Background(), 2021, 2, 2019)
	require.NoError(t, err)
	require.Len(t, out, 1)

	team := out[0]
	// Same-source detail merged in.
	assert.Equal(t, "www.tottenhamhotspur.com", team.Contact.Website)
	require.Len(t, team.Squad, 1)
	// Cross-source IDs attached.
	assert.Equal(t, 20, team.LiveScoreID)
	assert.Equal(t, 17, team.FantasyID)
	assert.Equal(t, 62850, team.Stadium.Capacity)
	require.NotNil(t, team.Strength)
	assert.Equal(t, 1300, team.Strength.AttackHome)
	// Later source wins on name spelling.
	assert.Equal(t, "Tottenham Hotspur", team.Name)
	assert.Equal(t, 1, res.Matched)
}

// --------------------------------------------------------------------------
// Matches
// --------------------------------------------------------------------------

func TestMatchesEndToEnd(t *testing.T) {
	kickoff := time.Date(2018, 8, 24, 18, 30, 0, 0, time.UTC)
	s := &fakeStructured{matches: []provider.Match{{
		HomeTeam: "FC Bayern München", AwayTeam: "TSG 1899 Hoffenheim",
		FullTimeHome: intp(3), FullTimeAway: intp(1),
		UTCDate:  kickoff,
		Matchday: 1, Season: "2018",
		FootballDataID: 235088,
	}}}
	l := &fakeLiveScore{
		matches: []provider.Match{{
			HomeTeam: "Bayern", AwayTeam: "Hoffenheim",
			FullTimeHome: intp(3), FullTimeAway: intp(1),
			LiveScoreID: 321042, LiveScoreCompetitionID: 4,
			HomeGoalProbability: 0.87,
		}},
		details: map[int]provider.Match{321042: {
			HomeForm: []string{"W", "W", "D"},
			AwayForm: []string{"L", "D", "W"},
			PreviousEncounters: []provider.Encounter{{
				HomeTeam: "Bayern", AwayTeam: "Hoffenheim", HomeScore: 5, AwayScore: 2,
			}},
		}},
	}
	f := &fakeFantasy{
		matches: []provider.Match{{
			FantasyGameWeek: 1, UTCDate: kickoff,
			FantasyHomeTeamID: 1, FantasyAwayTeamID: 2,
			FullTimeHome: intp(3), FullTimeAway: intp(1),
			FantasyMatchID: 7, FantasyMatchCode: 987654,
			HomeTeamDifficulty: 5, AwayTeamDifficulty: 2,
		}},
		teamNames: map[int]string{1: "Bayern", 2: "Hoffenheim"},
	}

	out, res, err := newTestDriver(s, l, f).Matches(context.Background(), 4, 2002, 1, 2018, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)

	m := out[0]
	// Window derived from the first structured kickoff, +4 days, passed
	// verbatim as the live-score query bounds.
	assert.Equal(t, kickoff, l.windowFrom)
	assert.Equal(t, kickoff.Add(4*24*time.Hour), l.windowTo)
	// Live-score fields win on collision.
	assert.Equal(t, "Bayern", m.HomeTeam)
	assert.Equal(t, "Hoffenheim", m.AwayTeam)
	assert.Equal(t, 321042, m.LiveScoreID)
	assert.Equal(t, 0.87, m.HomeGoalProbability)
	assert.Equal(t, []string{"W", "W", "D"}, m.HomeForm)
	require.Len(t, m.PreviousEncounters, 1)
	// Fantasy alignment.
	assert.Equal(t, 987654, m.FantasyMatchCode)
	assert.Equal(t, 5, m.HomeTeamDifficulty)
	// Structured identity retained.
	assert.Equal(t, 235088, m.FootballDataID)
	assert.Equal(t, 1, res.Matched)
}

func TestMatchesFiltersOtherCompetitions(t *testing.T) {
	kickoff := time.Date(2019, 2, 2, 15, 0, 0, 0, time.UTC)
	s := &fakeStructured{matches: []provider.Match{{
		HomeTeam: "Everton FC", AwayTeam: "Wolverhampton Wanderers FC",
		FullTimeHome: intp(1), FullTimeAway: intp(3),
		UTCDate:  kickoff,
		Matchday: 25,
	}}}
	// Same fixture shape but in another competition; must not be merged.
	l := &fakeLiveScore{matches: []provider.Match{{
		HomeTeam: "Everton", AwayTeam: "Wolverhampton",
		FullTimeHome: intp(1), FullTimeAway: intp(3),
		LiveScoreID: 11, LiveScoreCompetitionID: 99,
	}}}

	out, _, err := newTestDriver(s, l, nil).Matches(context.Background(), 2, 2021, 25, 2018, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].LiveScoreID)
}

func TestMatchesZeroStructuredIsFatal(t *testing.T) {
	_, _, err := newTestDriver(&fakeStructured{}, nil, nil).
		Matches(context.Background(), 2, 2021, 1, 2018, 0)
	assert.Error(t, err)
}

func TestMatchesLimitTruncatesOutputOnly(t *testing.T) {
	kickoff := time.Date(2018, 8, 25, 14, 0, 0, 0, time.UTC)
	var matches []provider.Match
	for i := 0; i < 10; i++ {
		matches = append(matches, provider.Match{
			HomeTeam: "Home", AwayTeam: "Away",
			UTCDate: kickoff.Add(time.Duration(i) * time.Hour),
		})
	}
	s := &fakeStructured{matches: matches}

	out, _, err := newTestDriver(s, nil, nil).Matches(context.Background(), 2, 2021, 2, 2018, 3)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

func TestPlayerDetailsEnrichesAndTransliterates(t *testing.T) {
	f := &fakeFantasy{
		players: []provider.Player{{
			Name: "Sergio Agüero", FirstName: "Sergio", LastName: "Agüero",
			WebName: "Agüero", FantasyID: 176,
		}},
		details: map[int]provider.Player{176: {
			SeasonSummaries: []provider.SeasonSummary{{SeasonName: "2017/18", TotalPoints: 169}},
			MatchHistory:    []provider.GameweekEntry{{GameWeek: 1, Points: 9}},
			FutureFixtures:  []int{987001, 987012},
		}},
	}

	out, res, err := newTestDriver(nil, nil, f).PlayerDetails(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0]
	assert.Equal(t, "Sergio Aguero", p.Name)
	assert.Equal(t, "Aguero", p.WebName)
	require.Len(t, p.SeasonSummaries, 1)
	assert.Equal(t, 169, p.SeasonSummaries[0].TotalPoints)
	require.Len(t, p.MatchHistory, 1)
	assert.Equal(t, []int{987001, 987012}, p.FutureFixtures)
	assert.Equal(t, 1, res.Matched)
}

func TestPlayerDetailsSkipsMalformed(t *testing.T) {
	f := &fakeFantasy{players: []provider.Player{
		{Name: "", FantasyID: 1},
		{Name: "Jamie Vardy", FantasyID: 2},
	}}

	out, res, err := newTestDriver(nil, nil, f).PlayerDetails(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, res.Skipped)
}
