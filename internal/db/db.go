// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfooty/openfooty-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the API and ingestion
// layers use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Ingestion: upserts keyed by the structured provider's identifiers.
		// The record column holds the full merged JSON document.
		"upsert_competition": `
			INSERT INTO competitions (football_data_id, live_score_id, name, code, location, record, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (football_data_id) DO UPDATE SET
				live_score_id = EXCLUDED.live_score_id,
				name = EXCLUDED.name,
				code = EXCLUDED.code,
				location = EXCLUDED.location,
				record = EXCLUDED.record,
				updated_at = now()`,
		"upsert_team": `
			INSERT INTO teams (football_data_id, live_score_id, fantasy_id, name, competition_id, record, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (football_data_id) DO UPDATE SET
				live_score_id = EXCLUDED.live_score_id,
				fantasy_id = EXCLUDED.fantasy_id,
				name = EXCLUDED.name,
				competition_id = EXCLUDED.competition_id,
				record = EXCLUDED.record,
				updated_at = now()`,
		"upsert_match": `
			INSERT INTO matches (football_data_id, live_score_id, fantasy_id, competition_id, gameweek, season, utc_date, home_team, away_team, record, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
			ON CONFLICT (football_data_id) DO UPDATE SET
				live_score_id = EXCLUDED.live_score_id,
				fantasy_id = EXCLUDED.fantasy_id,
				gameweek = EXCLUDED.gameweek,
				season = EXCLUDED.season,
				utc_date = EXCLUDED.utc_date,
				home_team = EXCLUDED.home_team,
				away_team = EXCLUDED.away_team,
				record = EXCLUDED.record,
				updated_at = now()`,
		"upsert_player": `
			INSERT INTO players (fantasy_id, fantasy_team_id, name, first_name, last_name, web_name, position, record, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
			ON CONFLICT (fantasy_id) DO UPDATE SET
				fantasy_team_id = EXCLUDED.fantasy_team_id,
				name = EXCLUDED.name,
				first_name = EXCLUDED.first_name,
				last_name = EXCLUDED.last_name,
				web_name = EXCLUDED.web_name,
				position = EXCLUDED.position,
				record = EXCLUDED.record,
				updated_at = now()`,

		// API: reads. Lists aggregate to one JSON document so handlers can
		// pass raw bytes through without re-marshalling.
		"list_competitions": "SELECT coalesce(json_agg(record ORDER BY name), '[]'::json) FROM competitions",
		"get_competition":   "SELECT record FROM competitions WHERE football_data_id = $1",
		"list_teams":        "SELECT coalesce(json_agg(record ORDER BY name), '[]'::json) FROM teams WHERE competition_id = $1",
		"get_team":          "SELECT record FROM teams WHERE football_data_id = $1",
		"list_matches":      "SELECT coalesce(json_agg(record ORDER BY utc_date), '[]'::json) FROM matches WHERE competition_id = $1 AND gameweek = $2 AND season = $3",
		"get_match":         "SELECT record FROM matches WHERE football_data_id = $1",
		"list_players":      "SELECT coalesce(json_agg(record ORDER BY name), '[]'::json) FROM players WHERE fantasy_team_id = $1",
		"get_player":        "SELECT record FROM players WHERE fantasy_id = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
