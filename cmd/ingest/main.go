// Command ingest is the OpenFooty data ingestion CLI.
//
// Usage:
//
//	openfooty-ingest reconcile competitions
//	openfooty-ingest reconcile teams --season 2025
//	openfooty-ingest reconcile matches --gameweek 3 --season 2025
//	openfooty-ingest reconcile players --workers 4
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openfooty/openfooty-data/internal/config"
	"github.com/openfooty/openfooty-data/internal/db"
	"github.com/openfooty/openfooty-data/internal/provider"
	"github.com/openfooty/openfooty-data/internal/provider/fantasy"
	"github.com/openfooty/openfooty-data/internal/provider/footballdata"
	"github.com/openfooty/openfooty-data/internal/provider/livescore"
	"github.com/openfooty/openfooty-data/internal/reconcile"
	"github.com/openfooty/openfooty-data/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "openfooty-ingest",
		Short: "OpenFooty data ingestion CLI",
	}

	root.AddCommand(reconcileCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// reconcile command
// --------------------------------------------------------------------------

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile records across providers and persist them",
	}
	cmd.AddCommand(reconcileCompetitionsCmd())
	cmd.AddCommand(reconcileTeamsCmd())
	cmd.AddCommand(reconcileMatchesCmd())
	cmd.AddCommand(reconcilePlayersCmd())
	return cmd
}

func reconcileCompetitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "competitions",
		Short: "Reconcile the competition catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				driver, err := buildDriver(cfg)
				if err != nil {
					return err
				}
				start := time.Now()
				result, err := seed.SeedCompetitions(ctx, pool.Pool, driver, logger)
				if err != nil {
					return err
				}
				logger.Info("Competition reconcile finished",
					"duration", time.Since(start).Round(time.Second), "summary", result.Summary())
				logErrors(result)
				return nil
			})
		},
	}
	return cmd
}

func reconcileTeamsCmd() *cobra.Command {
	var season, competitionID, liveScoreID int
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Reconcile the teams of one competition-season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				driver, err := buildDriver(cfg)
				if err != nil {
					return err
				}
				start := time.Now()
				result, err := seed.SeedTeams(ctx, pool.Pool, driver, competitionID, liveScoreID, season, logger)
				if err != nil {
					return err
				}
				logger.Info("Team reconcile finished",
					"duration", time.Since(start).Round(time.Second), "summary", result.Summary())
				logErrors(result)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.DefaultSeason, "Season year")
	cmd.Flags().IntVar(&competitionID, "competition", config.DefaultStructuredCompetitionID, "Structured provider competition ID")
	cmd.Flags().IntVar(&liveScoreID, "live-score-competition", config.DefaultLiveScoreCompetitionID, "Live-score provider competition ID")
	return cmd
}

func reconcileMatchesCmd() *cobra.Command {
	var season, competitionID, liveScoreID, gameweek, limit int
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Reconcile one gameweek of matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameweek == 0 {
				return fmt.Errorf("--gameweek is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				driver, err := buildDriver(cfg)
				if err != nil {
					return err
				}
				start := time.Now()
				result, err := seed.SeedMatches(ctx, pool.Pool, driver, liveScoreID, competitionID, gameweek, season, limit, logger)
				if err != nil {
					return err
				}
				logger.Info("Match reconcile finished",
					"gameweek", gameweek, "duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				logErrors(result)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.DefaultSeason, "Season year")
	cmd.Flags().IntVar(&competitionID, "competition", config.DefaultStructuredCompetitionID, "Structured provider competition ID")
	cmd.Flags().IntVar(&liveScoreID, "live-score-competition", config.DefaultLiveScoreCompetitionID, "Live-score provider competition ID")
	cmd.Flags().IntVar(&gameweek, "gameweek", 0, "Gameweek number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum matches to persist (0 = all)")
	return cmd
}

func reconcilePlayersCmd() *cobra.Command {
	var season, competitionID, liveScoreID, fantasyTeamID, workers int
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Reconcile player details, one fantasy team at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				driver, err := buildDriver(cfg)
				if err != nil {
					return err
				}
				if workers < 1 {
					workers = cfg.PlayerWorkers
				}

				// The reconciled teams carry both the fantasy IDs and the
				// structured squads used to enrich roster players.
				teams, res, err := driver.Teams(ctx, competitionID, liveScoreID, season)
				if err != nil {
					return err
				}
				logger.Info("Teams reconciled for rosters", "summary", res.Summary())

				start := time.Now()
				result := seedPlayersPool(ctx, pool, driver, teams, fantasyTeamID, workers)
				logger.Info("Player reconcile finished",
					"duration", time.Since(start).Round(time.Second), "summary", result.Summary())
				logErrors(result)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.DefaultSeason, "Season year")
	cmd.Flags().IntVar(&competitionID, "competition", config.DefaultStructuredCompetitionID, "Structured provider competition ID")
	cmd.Flags().IntVar(&liveScoreID, "live-score-competition", config.DefaultLiveScoreCompetitionID, "Live-score provider competition ID")
	cmd.Flags().IntVar(&fantasyTeamID, "fantasy-team", 0, "Restrict to one fantasy team ID (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent worker count (0 = PLAYER_WORKERS)")
	return cmd
}

// seedPlayersPool fans team rosters out over a fixed worker pool. Each
// worker seeds one team's players at a time; results are merged under a
// mutex.
func seedPlayersPool(ctx context.Context, pool *db.Pool, driver *reconcile.Driver,
	teams []provider.Team, onlyTeamID, workers int) seed.SeedResult {

	var (
		mu     sync.Mutex
		result seed.SeedResult
		wg     sync.WaitGroup
	)

	jobs := make(chan provider.Team)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for team := range jobs {
				r, err := seed.SeedTeamPlayers(ctx, pool.Pool, driver, team.FantasyID, team.Squad, logger)
				mu.Lock()
				if err != nil {
					result.AddErrorf("seed players for team %q: %v", team.Name, err)
				}
				result.Add(r)
				mu.Unlock()
			}
		}()
	}

	for _, team := range teams {
		if team.FantasyID == 0 {
			logger.Warn("Team has no fantasy match, skipping roster", "team", team.Name)
			continue
		}
		if onlyTeamID != 0 && team.FantasyID != onlyTeamID {
			continue
		}
		select {
		case jobs <- team:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			result.AddErrorf("cancelled: %v", ctx.Err())
			return result
		}
	}
	close(jobs)
	wg.Wait()
	return result
}

func logErrors(result seed.SeedResult) {
	for _, e := range result.Errors {
		logger.Error("reconcile error", "error", e)
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// buildDriver wires the three provider handlers into a reconciliation
// driver.
func buildDriver(cfg *config.Config) (*reconcile.Driver, error) {
	if cfg.FootballDataAPIKey == "" {
		return nil, fmt.Errorf("FOOTBALL_DATA_API_KEY is required")
	}
	structured := footballdata.NewHandler(cfg.FootballDataAPIKey, logger)
	live := livescore.NewHandler(cfg.LiveScoreAPIKey, logger)
	fpl := fantasy.NewHandler(logger)
	return reconcile.New(structured, live, fpl, logger), nil
}

// runIngest handles config loading, DB connection, and context cancellation.
func runIngest(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
