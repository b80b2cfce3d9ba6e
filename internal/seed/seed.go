package seed

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfooty/openfooty-data/internal/provider"
	"github.com/openfooty/openfooty-data/internal/reconcile"
)

// SeedCompetitions reconciles and persists the competition catalogue.
func SeedCompetitions(ctx context.Context, pool *pgxpool.Pool, driver *reconcile.Driver, logger *slog.Logger) (SeedResult, error) {
	var result SeedResult

	comps, res, err := driver.Competitions(ctx)
	if err != nil {
		return result, err
	}
	logger.Info("Competitions reconciled", "summary", res.Summary())

	for _, c := range comps {
		if err := UpsertCompetition(ctx, pool, c); err != nil {
			result.AddErrorf("upsert competition %d: %v", c.FootballDataID, err)
			continue
		}
		result.CompetitionsUpserted++
	}

	logger.Info("Competition seed complete", "summary", result.Summary())
	return result, nil
}

// SeedTeams reconciles and persists the teams of one competition-season.
func SeedTeams(ctx context.Context, pool *pgxpool.Pool, driver *reconcile.Driver,
	structuredCompID, liveScoreCompID, season int, logger *slog.Logger) (SeedResult, error) {

	var result SeedResult

	teams, res, err := driver.Teams(ctx, structuredCompID, liveScoreCompID, season)
	if err != nil {
		return result, err
	}
	logger.Info("Teams reconciled",
		"competition_id", structuredCompID, "season", season, "summary", res.Summary())

	for _, t := range teams {
		if err := UpsertTeam(ctx, pool, structuredCompID, t); err != nil {
			result.AddErrorf("upsert team %d: %v", t.FootballDataID, err)
			continue
		}
		result.TeamsUpserted++
	}

	logger.Info("Team seed complete", "summary", result.Summary())
	return result, nil
}

// SeedMatches reconciles and persists one gameweek of one competition-season.
func SeedMatches(ctx context.Context, pool *pgxpool.Pool, driver *reconcile.Driver,
	liveScoreCompID, structuredCompID, gameweek, season, limit int, logger *slog.Logger) (SeedResult, error) {

	var result SeedResult

	matches, res, err := driver.Matches(ctx, liveScoreCompID, structuredCompID, gameweek, season, limit)
	if err != nil {
		return result, err
	}
	logger.Info("Matches reconciled",
		"competition_id", structuredCompID, "gameweek", gameweek, "summary", res.Summary())

	for _, m := range matches {
		if err := UpsertMatch(ctx, pool, structuredCompID, m); err != nil {
			result.AddErrorf("upsert match %d: %v", m.FootballDataID, err)
			continue
		}
		result.MatchesUpserted++
	}

	logger.Info("Match seed complete", "summary", result.Summary())
	return result, nil
}

// SeedTeamPlayers reconciles and persists the fantasy roster of one team,
// enriched with identity attributes from the structured squad when roster
// members match unambiguously.
func SeedTeamPlayers(ctx context.Context, pool *pgxpool.Pool, driver *reconcile.Driver,
	fantasyTeamID int, squad []provider.SquadMember, logger *slog.Logger) (SeedResult, error) {

	var result SeedResult

	players, res, err := driver.PlayerDetails(ctx, fantasyTeamID)
	if err != nil {
		return result, err
	}
	enriched := EnrichFromSquad(players, squad)
	logger.Info("Players reconciled",
		"fantasy_team_id", fantasyTeamID, "enriched", enriched, "summary", res.Summary())

	for _, p := range players {
		if err := UpsertPlayer(ctx, pool, p); err != nil {
			result.AddErrorf("upsert player %d: %v", p.FantasyID, err)
			continue
		}
		result.PlayersUpserted++
	}

	logger.Info("Player seed complete", "fantasy_team_id", fantasyTeamID, "summary", result.Summary())
	return result, nil
}
