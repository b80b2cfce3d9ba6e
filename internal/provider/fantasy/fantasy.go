package fantasy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/openfooty/openfooty-data/internal/provider"
)

// Handler fetches and normalizes records from the fantasy API. It
// implements provider.FantasyProvider.
//
// The bootstrap payload carries all teams and all players in one response,
// so it is fetched once and cached for the Handler's lifetime. Ingest runs
// are short-lived; staleness is not a concern.
type Handler struct {
	client *Client
	logger *slog.Logger

	mu        sync.Mutex
	bootstrap *fplBootstrap
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		client: NewClient(logger),
		logger: logger,
	}
}

// --------------------------------------------------------------------------
// Wire types
// --------------------------------------------------------------------------

// floatNumber decodes the API's quoted decimals ("4.5") as well as plain
// numbers.
type floatNumber float64

func (f *floatNumber) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*f = floatNumber(v)
	return nil
}

type fplTeam struct {
	ID   int    `json:"id"`
	Code int    `json:"code"`
	Name string `json:"name"`

	StrengthOverallHome int `json:"strength_overall_home"`
	StrengthOverallAway int `json:"strength_overall_away"`
	StrengthAttackHome  int `json:"strength_attack_home"`
	StrengthAttackAway  int `json:"strength_attack_away"`
	StrengthDefenceHome int `json:"strength_defence_home"`
	StrengthDefenceAway int `json:"strength_defence_away"`
	StrengthOverall     int `json:"strength"`
}

type fplElementType struct {
	ID           int    `json:"id"`
	SingularName string `json:"singular_name"`
}

type fplEvent struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
}

type fplElement struct {
	ID         int    `json:"id"`
	Code       int    `json:"code"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	WebName    string `json:"web_name"`
	Team       int    `json:"team"`
	TeamCode   int    `json:"team_code"`
	TypeID     int    `json:"element_type"`
	SquadNum   int    `json:"squad_number"`

	Status             string      `json:"status"`
	News               string      `json:"news"`
	NowCost            int         `json:"now_cost"`
	Form               floatNumber `json:"form"`
	PointsPerGame      floatNumber `json:"points_per_game"`
	SelectedByPercent  floatNumber `json:"selected_by_percent"`
	TotalPoints        int         `json:"total_points"`
	EventPoints        int         `json:"event_points"`
	Minutes            int         `json:"minutes"`
	GoalsScored        int         `json:"goals_scored"`
	Assists            int         `json:"assists"`
	CleanSheets        int         `json:"clean_sheets"`
	GoalsConceded      int         `json:"goals_conceded"`
	OwnGoals           int         `json:"own_goals"`
	PenaltiesSaved     int         `json:"penalties_saved"`
	PenaltiesMissed    int         `json:"penalties_missed"`
	YellowCards        int         `json:"yellow_cards"`
	RedCards           int         `json:"red_cards"`
	Saves              int         `json:"saves"`
	Bonus              int         `json:"bonus"`
	Influence          floatNumber `json:"influence"`
	Creativity         floatNumber `json:"creativity"`
	Threat             floatNumber `json:"threat"`
	ICTIndex           floatNumber `json:"ict_index"`
}

type fplBootstrap struct {
	Teams        []fplTeam        `json:"teams"`
	Elements     []fplElement     `json:"elements"`
	ElementTypes []fplElementType `json:"element_types"`
	Events       []fplEvent       `json:"events"`
}

// fplTime decodes kickoff timestamps, which are null for fixtures not yet
// scheduled.
type fplTime struct {
	time.Time
}

func (t *fplTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	return t.Time.UnmarshalJSON(data)
}

type fplStatEntry struct {
	Value   int `json:"value"`
	Element int `json:"element"`
}

type fplStat struct {
	Identifier string         `json:"identifier"`
	Away       []fplStatEntry `json:"a"`
	Home       []fplStatEntry `json:"h"`
}

type fplFixture struct {
	ID             int       `json:"id"`
	Code           int       `json:"code"`
	Event          int       `json:"event"`
	KickoffTime    fplTime   `json:"kickoff_time"`
	TeamHome       int       `json:"team_h"`
	TeamAway       int       `json:"team_a"`
	TeamHomeScore  *int      `json:"team_h_score"`
	TeamAwayScore  *int      `json:"team_a_score"`
	HomeDifficulty int       `json:"team_h_difficulty"`
	AwayDifficulty int       `json:"team_a_difficulty"`
	Stats          []fplStat `json:"stats"`
}

type fplHistoryEntry struct {
	KickoffTime      fplTime `json:"kickoff_time"`
	Round            int     `json:"round"`
	WasHome          bool    `json:"was_home"`
	TeamHomeScore    *int    `json:"team_h_score"`
	TeamAwayScore    *int    `json:"team_a_score"`
	TotalPoints      int     `json:"total_points"`
	Value            int     `json:"value"`
	TransfersBalance int     `json:"transfers_balance"`
	Selected         int     `json:"selected"`
	TransfersIn      int     `json:"transfers_in"`
	TransfersOut     int     `json:"transfers_out"`
	Minutes          int     `json:"minutes"`
	GoalsScored      int     `json:"goals_scored"`
	Assists          int     `json:"assists"`
	CleanSheets      int     `json:"clean_sheets"`
	GoalsConceded    int     `json:"goals_conceded"`
	OwnGoals         int     `json:"own_goals"`
	PenaltiesSaved   int     `json:"penalties_saved"`
	PenaltiesMissed  int     `json:"penalties_missed"`
	YellowCards      int     `json:"yellow_cards"`
	RedCards         int     `json:"red_cards"`
	Saves            int     `json:"saves"`
	Bonus            int     `json:"bonus"`
	Influence        floatNumber `json:"influence"`
	Creativity       floatNumber `json:"creativity"`
	Threat           floatNumber `json:"threat"`
	ICTIndex         floatNumber `json:"ict_index"`
	OpponentTeam     int     `json:"opponent_team"`
}

type fplPastSeason struct {
	SeasonName      string `json:"season_name"`
	StartCost       int    `json:"start_cost"`
	EndCost         int    `json:"end_cost"`
	TotalPoints     int    `json:"total_points"`
	Minutes         int    `json:"minutes"`
	GoalsScored     int    `json:"goals_scored"`
	Assists         int    `json:"assists"`
	CleanSheets     int    `json:"clean_sheets"`
	GoalsConceded   int    `json:"goals_conceded"`
	OwnGoals        int    `json:"own_goals"`
	PenaltiesSaved  int    `json:"penalties_saved"`
	PenaltiesMissed int    `json:"penalties_missed"`
	YellowCards     int    `json:"yellow_cards"`
	RedCards        int    `json:"red_cards"`
	Saves           int    `json:"saves"`
	Bonus           int    `json:"bonus"`
}

type fplElementSummary struct {
	Fixtures    []fplFixture      `json:"fixtures"`
	History     []fplHistoryEntry `json:"history"`
	HistoryPast []fplPastSeason   `json:"history_past"`
}

// --------------------------------------------------------------------------
// Bootstrap cache
// --------------------------------------------------------------------------

func (h *Handler) getBootstrap(ctx context.Context) (*fplBootstrap, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bootstrap != nil {
		return h.bootstrap, nil
	}

	body, err := h.client.get(ctx, "/bootstrap-static/")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("fantasy bootstrap unavailable")
	}

	var bs fplBootstrap
	if err := json.Unmarshal(body, &bs); err != nil {
		return nil, fmt.Errorf("decode bootstrap: %w", err)
	}
	h.bootstrap = &bs
	return h.bootstrap, nil
}

func (h *Handler) currentGameweek(bs *fplBootstrap) int {
	for _, e := range bs.Events {
		if e.IsCurrent {
			return e.ID
		}
	}
	return 0
}

// --------------------------------------------------------------------------
// provider.FantasyProvider
// --------------------------------------------------------------------------

// Teams lists all fantasy teams with strength ratings. Names have alias
// corrections applied.
func (h *Handler) Teams(ctx context.Context) ([]provider.Team, error) {
	bs, err := h.getBootstrap(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]provider.Team, 0, len(bs.Teams))
	for _, t := range bs.Teams {
		out = append(out, provider.Team{
			Name:        canonicalName(t.Name),
			FantasyID:   t.ID,
			FantasyCode: t.Code,
			Strength: &provider.Strength{
				Overall:     t.StrengthOverall,
				OverallHome: t.StrengthOverallHome,
				OverallAway: t.StrengthOverallAway,
				AttackHome:  t.StrengthAttackHome,
				AttackAway:  t.StrengthAttackAway,
				DefenceHome: t.StrengthDefenceHome,
				DefenceAway: t.StrengthDefenceAway,
			},
		})
	}
	return out, nil
}

// TeamName resolves a fantasy team ID to a display name with alias
// corrections applied. Falls back to the static season table when the
// bootstrap endpoint is unreachable.
func (h *Handler) TeamName(ctx context.Context, teamID int) (string, bool) {
	bs, err := h.getBootstrap(ctx)
	if err != nil {
		h.logger.Warn("fantasy bootstrap unavailable, using static team table", "error", err)
		name, ok := fallbackTeamNames[teamID]
		return name, ok
	}
	for _, t := range bs.Teams {
		if t.ID == teamID {
			return canonicalName(t.Name), true
		}
	}
	return "", false
}

// Matches lists all fixtures of the current season. Team sides are numeric
// fantasy IDs.
func (h *Handler) Matches(ctx context.Context) ([]provider.Match, error) {
	body, err := h.client.get(ctx, "/fixtures/")
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var fixtures []fplFixture
	if err := json.Unmarshal(body, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	out := make([]provider.Match, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, convertFixture(f))
	}
	return out, nil
}

// Players lists the players of one fantasy team.
func (h *Handler) Players(ctx context.Context, teamID int) ([]provider.Player, error) {
	bs, err := h.getBootstrap(ctx)
	if err != nil {
		return nil, err
	}

	gameweek := h.currentGameweek(bs)
	positions := make(map[int]string, len(bs.ElementTypes))
	for _, t := range bs.ElementTypes {
		positions[t.ID] = t.SingularName
	}

	var out []provider.Player
	for _, e := range bs.Elements {
		if e.Team != teamID {
			continue
		}
		out = append(out, convertElement(e, positions, gameweek))
	}
	return out, nil
}

// PlayerDetail fetches season summaries, gameweek history, and future
// fixtures for one player.
func (h *Handler) PlayerDetail(ctx context.Context, playerID int) (provider.Player, bool, error) {
	body, err := h.client.get(ctx, fmt.Sprintf("/element-summary/%d/", playerID))
	if err != nil {
		return provider.Player{}, false, err
	}
	if body == nil {
		return provider.Player{}, false, nil
	}

	var summary fplElementSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return provider.Player{}, false, fmt.Errorf("decode player %d: %w", playerID, err)
	}

	p := provider.Player{FantasyID: playerID}
	for _, s := range summary.HistoryPast {
		p.SeasonSummaries = append(p.SeasonSummaries, provider.SeasonSummary{
			SeasonName:      s.SeasonName,
			StartPrice:      s.StartCost,
			EndPrice:        s.EndCost,
			TotalPoints:     s.TotalPoints,
			Minutes:         s.Minutes,
			Goals:           s.GoalsScored,
			Assists:         s.Assists,
			CleanSheets:     s.CleanSheets,
			GoalsConceded:   s.GoalsConceded,
			OwnGoals:        s.OwnGoals,
			PenaltiesSaved:  s.PenaltiesSaved,
			PenaltiesMissed: s.PenaltiesMissed,
			YellowCards:     s.YellowCards,
			RedCards:        s.RedCards,
			Saves:           s.Saves,
			Bonus:           s.Bonus,
		})
	}
	for _, e := range summary.History {
		p.MatchHistory = append(p.MatchHistory, provider.GameweekEntry{
			KickoffTime:      e.KickoffTime.Time,
			GameWeek:         e.Round,
			HomeScore:        e.TeamHomeScore,
			AwayScore:        e.TeamAwayScore,
			PlayedAtHome:     e.WasHome,
			Points:           e.TotalPoints,
			Value:            e.Value,
			TransfersBalance: e.TransfersBalance,
			SelectedBy:       e.Selected,
			TransfersIn:      e.TransfersIn,
			TransfersOut:     e.TransfersOut,
			Minutes:          e.Minutes,
			Goals:            e.GoalsScored,
			Assists:          e.Assists,
			CleanSheet:       e.CleanSheets > 0,
			GoalsConceded:    e.GoalsConceded,
			OwnGoals:         e.OwnGoals,
			PenaltiesSaved:   e.PenaltiesSaved,
			PenaltiesMissed:  e.PenaltiesMissed,
			YellowCards:      e.YellowCards,
			RedCards:         e.RedCards,
			Saves:            e.Saves,
			Bonus:            e.Bonus,
			Influence:        float64(e.Influence),
			Creativity:       float64(e.Creativity),
			Threat:           float64(e.Threat),
			ICTIndex:         float64(e.ICTIndex),
			OpponentTeamID:   e.OpponentTeam,
		})
	}
	for _, f := range summary.Fixtures {
		p.FutureFixtures = append(p.FutureFixtures, f.ID)
	}
	return p, true, nil
}

// --------------------------------------------------------------------------
// Conversions
// --------------------------------------------------------------------------

func convertFixture(f fplFixture) provider.Match {
	match := provider.Match{
		UTCDate:            f.KickoffTime.Time,
		FullTimeHome:       f.TeamHomeScore,
		FullTimeAway:       f.TeamAwayScore,
		FantasyMatchID:     f.ID,
		FantasyMatchCode:   f.Code,
		FantasyGameWeek:    f.Event,
		FantasyHomeTeamID:  f.TeamHome,
		FantasyAwayTeamID:  f.TeamAway,
		HomeTeamDifficulty: f.HomeDifficulty,
		AwayTeamDifficulty: f.AwayDifficulty,
	}
	for _, stat := range f.Stats {
		for _, entry := range stat.Home {
			match.Events = append(match.Events, provider.MatchEvent{
				Stat:       stat.Identifier,
				PlayerCode: entry.Element,
				Value:      entry.Value,
				Side:       "home",
			})
		}
		for _, entry := range stat.Away {
			match.Events = append(match.Events, provider.MatchEvent{
				Stat:       stat.Identifier,
				PlayerCode: entry.Element,
				Value:      entry.Value,
				Side:       "away",
			})
		}
	}
	return match
}

func convertElement(e fplElement, positions map[int]string, gameweek int) provider.Player {
	return provider.Player{
		Name:            e.FirstName + " " + e.SecondName,
		FirstName:       e.FirstName,
		LastName:        e.SecondName,
		WebName:         e.WebName,
		Position:        positions[e.TypeID],
		ShirtNumber:     e.SquadNum,
		FantasyID:       e.ID,
		FantasyCode:     e.Code,
		FantasyTeamID:   e.Team,
		FantasyTeamCode: e.TeamCode,

		Status:              e.Status,
		News:                e.News,
		Price:               e.NowCost,
		Form:                float64(e.Form),
		PointsPerGame:       float64(e.PointsPerGame),
		SelectionPercentage: float64(e.SelectedByPercent),
		TotalPoints:         e.TotalPoints,
		WeekPoints:          e.EventPoints,

		Minutes:         e.Minutes,
		Goals:           e.GoalsScored,
		Assists:         e.Assists,
		CleanSheets:     e.CleanSheets,
		GoalsConceded:   e.GoalsConceded,
		OwnGoals:        e.OwnGoals,
		PenaltiesSaved:  e.PenaltiesSaved,
		PenaltiesMissed: e.PenaltiesMissed,
		YellowCards:     e.YellowCards,
		RedCards:        e.RedCards,
		Saves:           e.Saves,
		TotalBonus:      e.Bonus,
		Influence:       float64(e.Influence),
		Creativity:      float64(e.Creativity),
		Threat:          float64(e.Threat),
		ICTIndex:        float64(e.ICTIndex),
		GameWeek:        gameweek,
	}
}
