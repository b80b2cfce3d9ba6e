package provider

import (
	"context"
	"time"
)

// StructuredProvider is the authoritative source of competition, team, and
// match schedule data. Its records are the base of every merge.
type StructuredProvider interface {
	// Competitions lists every competition the provider exposes.
	Competitions(ctx context.Context) ([]Competition, error)

	// CompetitionTeams lists the teams entered in a competition for one
	// season.
	CompetitionTeams(ctx context.Context, competitionID, season int) ([]Team, error)

	// TeamDetail fetches the extended record for one team: squad roster,
	// active competitions, contact details. found is false when the
	// provider has no such team.
	TeamDetail(ctx context.Context, teamID int) (Team, bool, error)

	// CompetitionMatches lists the matches of one gameweek of one season.
	CompetitionMatches(ctx context.Context, competitionID, matchday, season int) ([]Match, error)
}

// LiveScoreProvider supplies in-play and supplementary statistical data
// keyed by its own identifiers.
type LiveScoreProvider interface {
	Competitions(ctx context.Context) ([]Competition, error)

	// Teams lists the teams of a competition. Not season-scoped; the
	// provider only tracks current membership.
	Teams(ctx context.Context, competitionID int) ([]Team, error)

	// MatchesWindow lists all matches, across competitions, with kickoff
	// inside [from, to].
	MatchesWindow(ctx context.Context, from, to time.Time) ([]Match, error)

	// MatchDetail fetches form, head-to-head history, and probabilities
	// for one match.
	MatchDetail(ctx context.Context, matchID int) (Match, bool, error)
}

// FantasyProvider supplies fantasy-game player and team attributes.
type FantasyProvider interface {
	// Teams lists all fantasy teams with strength ratings. Names have
	// alias corrections applied (see the fantasy package's alias table).
	Teams(ctx context.Context) ([]Team, error)

	// TeamName resolves a fantasy numeric team ID to a display name,
	// with alias corrections applied. found is false for unknown IDs.
	TeamName(ctx context.Context, teamID int) (string, bool)

	// Matches lists all fixtures of the current season. Team sides are
	// numeric IDs (FantasyHomeTeamID/FantasyAwayTeamID), not names.
	Matches(ctx context.Context) ([]Match, error)

	// Players lists the players of one fantasy team.
	Players(ctx context.Context, teamID int) ([]Player, error)

	// PlayerDetail fetches season summaries, gameweek history, and
	// future fixtures for one player.
	PlayerDetail(ctx context.Context, playerID int) (Player, bool, error)
}
