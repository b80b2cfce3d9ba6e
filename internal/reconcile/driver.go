package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openfooty/openfooty-data/internal/provider"
)

// Driver orchestrates the three provider adapters and the matcher to
// produce unified records. One method per entity kind; every call is a
// pure function of its inputs and the injected adapters, so concurrent
// calls are safe as long as each adapter manages its own session.
//
// Merge precedence everywhere: structured-provider fields are the base,
// live-score and fantasy fields are layered on top and win on collision.
// A record that fails to match an enriching source is returned untouched;
// that is normal flow, never an error.
type Driver struct {
	structured provider.StructuredProvider
	liveScore  provider.LiveScoreProvider
	fantasy    provider.FantasyProvider
	logger     *slog.Logger
}

// New creates a Driver. All three adapters are required; the logger may be
// nil.
func New(structured provider.StructuredProvider, liveScore provider.LiveScoreProvider, fantasy provider.FantasyProvider, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		structured: structured,
		liveScore:  liveScore,
		fantasy:    fantasy,
		logger:     logger,
	}
}

// Competitions reconciles the structured provider's competition list
// against the live-score provider's, attaching the live-score ID where a
// pairing is accepted. The full structured list is returned; enrichment is
// best-effort.
func (d *Driver) Competitions(ctx context.Context) ([]provider.Competition, Result, error) {
	var res Result

	structured, err := d.structured.Competitions(ctx)
	if err != nil {
		return nil, res, fmt.Errorf("structured competitions: %w", err)
	}

	liveScore, err := d.liveScore.Competitions(ctx)
	if err != nil {
		// Enrichment source down: degrade to no candidates.
		d.logger.Warn("live-score competitions unavailable", "error", err)
		res.AddErrorf("live-score competitions: %v", err)
		liveScore = nil
	}

	candidates := liveScore[:0:0]
	for _, c := range liveScore {
		if c.Name == "" {
			res.Skipped++
			continue
		}
		candidates = append(candidates, c)
	}

	out := make([]provider.Competition, 0, len(structured))
	for _, comp := range structured {
		if comp.Name == "" {
			res.Skipped++
			continue
		}
		if idx, ok := matchCompetition(comp, candidates); ok {
			comp.LiveScoreID = candidates[idx].LiveScoreID
			res.Matched++
		} else {
			res.Unmatched++
		}
		out = append(out, comp)
	}

	d.logger.Info("competitions reconciled", "summary", res.Summary())
	return out, res, nil
}

// Teams reconciles the structured provider's team list for one
// competition-season against the live-score provider (competition-scoped)
// and the fantasy provider (global). Each structured team is first
// enriched from its own extended detail (squad, active competitions), then
// independently matched by name against each enriching source. A team
// that matches neither side is still returned with structured fields only.
func (d *Driver) Teams(ctx context.Context, structuredCompID, liveScoreCompID, season int) ([]provider.Team, Result, error) {
	var res Result

	structured, err := d.structured.CompetitionTeams(ctx, structuredCompID, season)
	if err != nil {
		return nil, res, fmt.Errorf("structured teams: %w", err)
	}

	liveScore, err := d.liveScore.Teams(ctx, liveScoreCompID)
	if err != nil {
		d.logger.Warn("live-score teams unavailable", "error", err)
		res.AddErrorf("live-score teams: %v", err)
		liveScore = nil
	}

	fantasy, err := d.fantasy.Teams(ctx)
	if err != nil {
		d.logger.Warn("fantasy teams unavailable", "error", err)
		res.AddErrorf("fantasy teams: %v", err)
		fantasy = nil
	}

	out := make([]provider.Team, 0, len(structured))
	for _, team := range structured {
		if team.Name == "" {
			res.Skipped++
			continue
		}

		// Same-source two-step enrichment: the list endpoint carries the
		// basic record, the detail endpoint adds squad and competitions.
		if team.FootballDataID != 0 {
			detail, found, err := d.structured.TeamDetail(ctx, team.FootballDataID)
			if err != nil {
				res.AddErrorf("team detail %d: %v", team.FootballDataID, err)
			} else if found {
				mergeTeamDetail(&team, detail)
			}
		}

		// Both cross-source matches run against the structured name;
		// merging may change the spelling afterwards.
		structuredName := team.Name
		enriched := false
		if idx, ok := matchTeam(structuredName, liveScore); ok {
			mergeLiveScoreTeam(&team, liveScore[idx])
			enriched = true
		}
		if idx, ok := matchTeam(structuredName, fantasy); ok {
			mergeFantasyTeam(&team, fantasy[idx])
			enriched = true
		}

		if enriched {
			res.Matched++
		} else {
			res.Unmatched++
		}
		out = append(out, team)
	}

	d.logger.Info("teams reconciled",
		"competition", structuredCompID, "season", season, "summary", res.Summary())
	return out, res, nil
}

// Matches reconciles one gameweek of structured matches against the
// live-score and fantasy providers. The live-score candidate pool is the
// matches inside the gameweek window, filtered to the target competition;
// accepted pairings are further enriched with per-match detail. Fantasy
// fixtures are aligned independently. limit, when positive, truncates the
// final list only; it never limits upstream fetch volume.
func (d *Driver) Matches(ctx context.Context, liveScoreCompID, structuredCompID, gameweek, season, limit int) ([]provider.Match, Result, error) {
	var res Result

	structured, err := d.structured.CompetitionMatches(ctx, structuredCompID, gameweek, season)
	if err != nil {
		return nil, res, fmt.Errorf("structured matches: %w", err)
	}
	if len(structured) == 0 {
		// Nothing to derive the window from; downstream steps cannot run.
		return nil, res, fmt.Errorf("no structured matches for competition %d gameweek %d season %d",
			structuredCompID, gameweek, season)
	}

	window := MatchWeekWindow(structured[0].UTCDate)
	liveScore, err := d.liveScore.MatchesWindow(ctx, window.From, window.To)
	if err != nil {
		d.logger.Warn("live-score matches unavailable", "error", err)
		res.AddErrorf("live-score matches: %v", err)
		liveScore = nil
	}

	// The window query is not competition-scoped; keep only the target.
	candidates := liveScore[:0:0]
	for _, m := range liveScore {
		if m.LiveScoreCompetitionID == liveScoreCompID {
			candidates = append(candidates, m)
		}
	}

	fantasy, err := d.fantasy.Matches(ctx)
	if err != nil {
		d.logger.Warn("fantasy matches unavailable", "error", err)
		res.AddErrorf("fantasy matches: %v", err)
		fantasy = nil
	}
	teamNames := d.fantasyTeamNames(ctx, fantasy)

	out := make([]provider.Match, 0, len(structured))
	for _, match := range structured {
		if match.HomeTeam == "" || match.AwayTeam == "" {
			res.Skipped++
			continue
		}

		enriched := false
		if idx, ok := matchLiveScoreMatch(match, candidates); ok {
			mergeLiveScoreMatch(&match, candidates[idx])
			enriched = true

			detail, found, err := d.liveScore.MatchDetail(ctx, match.LiveScoreID)
			if err != nil {
				res.AddErrorf("live-score match detail %d: %v", match.LiveScoreID, err)
			} else if found {
				mergeLiveScoreDetail(&match, detail)
			}
		}

		if idx, ok := matchFantasyMatch(match, fantasy, teamNames); ok {
			mergeFantasyMatch(&match, fantasy[idx])
			enriched = true
		}

		if enriched {
			res.Matched++
		} else {
			res.Unmatched++
		}
		out = append(out, match)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	d.logger.Info("matches reconciled",
		"competition", structuredCompID, "gameweek", gameweek, "season", season,
		"window_from", window.From, "window_to", window.To, "summary", res.Summary())
	return out, res, nil
}

// PlayerDetails fetches the fantasy players of one team and enriches each
// with its extended per-player detail from the same provider. Names are
// transliterated to plain ASCII before return, since downstream storage
// and fuzzy lookups assume ASCII-normalized names. Cross-source player
// identity is resolved at persistence time against an already-matched
// team's roster, not here.
func (d *Driver) PlayerDetails(ctx context.Context, fantasyTeamID int) ([]provider.Player, Result, error) {
	var res Result

	players, err := d.fantasy.Players(ctx, fantasyTeamID)
	if err != nil {
		return nil, res, fmt.Errorf("fantasy players for team %d: %w", fantasyTeamID, err)
	}

	out := make([]provider.Player, 0, len(players))
	for _, p := range players {
		if p.Name == "" {
			res.Skipped++
			continue
		}

		detail, found, err := d.fantasy.PlayerDetail(ctx, p.FantasyID)
		if err != nil {
			res.AddErrorf("player detail %d: %v", p.FantasyID, err)
		} else if found {
			mergePlayerDetail(&p, detail)
			res.Matched++
		} else {
			res.Unmatched++
		}

		p.Name = Transliterate(p.Name)
		p.FirstName = Transliterate(p.FirstName)
		p.LastName = Transliterate(p.LastName)
		p.WebName = Transliterate(p.WebName)
		out = append(out, p)
	}

	d.logger.Info("player details reconciled",
		"fantasy_team", fantasyTeamID, "summary", res.Summary())
	return out, res, nil
}

// fantasyTeamNames resolves the distinct team IDs appearing in fantasy
// fixtures to display names. Unresolvable IDs are left out; the matcher
// treats their fixtures as unmatchable.
func (d *Driver) fantasyTeamNames(ctx context.Context, fixtures []provider.Match) map[int]string {
	names := make(map[int]string)
	for _, f := range fixtures {
		for _, id := range [2]int{f.FantasyHomeTeamID, f.FantasyAwayTeamID} {
			if id == 0 {
				continue
			}
			if _, seen := names[id]; seen {
				continue
			}
			if name, ok := d.fantasy.TeamName(ctx, id); ok {
				names[id] = name
			}
		}
	}
	return names
}
