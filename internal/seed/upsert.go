package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfooty/openfooty-data/internal/provider"
)

// UpsertCompetition writes one competition row, keyed by the structured
// provider's ID.
func UpsertCompetition(ctx context.Context, pool *pgxpool.Pool, c provider.Competition) error {
	record, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal competition %d: %w", c.FootballDataID, err)
	}
	_, err = pool.Exec(ctx, "upsert_competition",
		c.FootballDataID, nullableID(c.LiveScoreID), c.Name, c.Code, c.Location, record)
	if err != nil {
		return fmt.Errorf("upsert competition %d: %w", c.FootballDataID, err)
	}
	return nil
}

// UpsertTeam writes one team row, keyed by the structured provider's ID.
func UpsertTeam(ctx context.Context, pool *pgxpool.Pool, competitionID int, t provider.Team) error {
	record, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal team %d: %w", t.FootballDataID, err)
	}
	_, err = pool.Exec(ctx, "upsert_team",
		t.FootballDataID, nullableID(t.LiveScoreID), nullableID(t.FantasyID),
		t.Name, competitionID, record)
	if err != nil {
		return fmt.Errorf("upsert team %d: %w", t.FootballDataID, err)
	}
	return nil
}

// UpsertMatch writes one match row, keyed by the structured provider's ID.
func UpsertMatch(ctx context.Context, pool *pgxpool.Pool, competitionID int, m provider.Match) error {
	record, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal match %d: %w", m.FootballDataID, err)
	}
	_, err = pool.Exec(ctx, "upsert_match",
		m.FootballDataID, nullableID(m.LiveScoreID), nullableID(m.FantasyMatchID),
		competitionID, m.Matchday, m.Season, m.UTCDate, m.HomeTeam, m.AwayTeam, record)
	if err != nil {
		return fmt.Errorf("upsert match %d: %w", m.FootballDataID, err)
	}
	return nil
}

// UpsertPlayer writes one player row, keyed by the fantasy provider's ID.
func UpsertPlayer(ctx context.Context, pool *pgxpool.Pool, p provider.Player) error {
	record, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal player %d: %w", p.FantasyID, err)
	}
	_, err = pool.Exec(ctx, "upsert_player",
		p.FantasyID, p.FantasyTeamID, p.Name, p.FirstName, p.LastName,
		p.WebName, p.Position, record)
	if err != nil {
		return fmt.Errorf("upsert player %d: %w", p.FantasyID, err)
	}
	return nil
}

// nullableID maps the zero "never matched" ID to SQL NULL so partial
// enrichment does not collide on unique indexes.
func nullableID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
