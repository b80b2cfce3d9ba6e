package livescore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/openfooty/openfooty-data/internal/provider"
)

// Handler fetches and normalizes records from the live-score API. It
// implements provider.LiveScoreProvider.
type Handler struct {
	client *Client
	logger *slog.Logger
}

// NewHandler creates a Handler with the hourly rate limit.
func NewHandler(apiKey string, logger *slog.Logger) *Handler {
	return &Handler{
		client: NewClient(apiKey, logger),
		logger: logger,
	}
}

// --------------------------------------------------------------------------
// Wire types
// --------------------------------------------------------------------------

type lsRegion struct {
	Name string `json:"name"`
}

type lsCompetition struct {
	DBID   int      `json:"dbid"`
	Name   string   `json:"name"`
	Region lsRegion `json:"competitionRegion"`
}

type lsGeolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lsVenue struct {
	Name        string        `json:"name"`
	Capacity    int           `json:"capacity"`
	Geolocation lsGeolocation `json:"geolocation"`
}

type lsTeam struct {
	DBID  int     `json:"dbid"`
	Name  string  `json:"name"`
	Venue lsVenue `json:"defaultVenue"`
}

type lsSide struct {
	DBID int    `json:"dbid"`
	Name string `json:"name"`
}

type lsOutcome struct {
	HomeGoals *int `json:"homeGoals"`
	AwayGoals *int `json:"awayGoals"`
}

type lsMatch struct {
	DBID        int           `json:"dbid"`
	Start       time.Time     `json:"start"`
	RoundNumber int           `json:"roundNumber"`
	Competition lsCompetition `json:"competition"`
	HomeTeam    lsSide        `json:"homeTeam"`
	AwayTeam    lsSide        `json:"awayTeam"`
	Outcome     lsOutcome     `json:"outcome"`
	HTOutcome   lsOutcome     `json:"halfTimeOutcome"`

	HomeGoalProbability float64       `json:"homeGoalProbability"`
	AwayGoalProbability float64       `json:"awayGoalProbability"`
	HomeForm            []string      `json:"homeForm"`
	AwayForm            []string      `json:"awayForm"`
	PreviousEncounters  []lsEncounter `json:"previousEncounters"`
}

type lsEncounter struct {
	Start    time.Time `json:"start"`
	HomeTeam lsSide    `json:"homeTeam"`
	AwayTeam lsSide    `json:"awayTeam"`
	Outcome  struct {
		HomeGoals int `json:"homeGoals"`
		AwayGoals int `json:"awayGoals"`
	} `json:"outcome"`
}

// --------------------------------------------------------------------------
// provider.LiveScoreProvider
// --------------------------------------------------------------------------

// Competitions lists every competition the API tracks.
func (h *Handler) Competitions(ctx context.Context) ([]provider.Competition, error) {
	body, err := h.client.get(ctx, "/competitions", nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var comps []lsCompetition
	if err := json.Unmarshal(body, &comps); err != nil {
		return nil, fmt.Errorf("decode competitions: %w", err)
	}

	out := make([]provider.Competition, 0, len(comps))
	for _, c := range comps {
		out = append(out, provider.Competition{
			Name:        c.Name,
			Location:    c.Region.Name,
			LiveScoreID: c.DBID,
		})
	}
	return out, nil
}

// Teams lists the current teams of a competition.
func (h *Handler) Teams(ctx context.Context, competitionID int) ([]provider.Team, error) {
	params := url.Values{"competition_id": {strconv.Itoa(competitionID)}}
	body, err := h.client.get(ctx, "/teams", params)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var teams []lsTeam
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	out := make([]provider.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, provider.Team{
			Name: t.Name,
			Stadium: provider.Stadium{
				Name:     t.Venue.Name,
				Lat:      t.Venue.Geolocation.Latitude,
				Long:     t.Venue.Geolocation.Longitude,
				Capacity: t.Venue.Capacity,
			},
			LiveScoreID: t.DBID,
		})
	}
	return out, nil
}

// MatchesWindow lists all matches, across competitions, with kickoff inside
// [from, to].
func (h *Handler) MatchesWindow(ctx context.Context, from, to time.Time) ([]provider.Match, error) {
	params := url.Values{
		"start_after":  {from.UTC().Format(time.RFC3339)},
		"start_before": {to.UTC().Format(time.RFC3339)},
	}
	body, err := h.client.get(ctx, "/matches", params)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var matches []lsMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}

	out := make([]provider.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, convertMatch(m))
	}
	return out, nil
}

// MatchDetail fetches form, head-to-head history, and probabilities for one
// match.
func (h *Handler) MatchDetail(ctx context.Context, matchID int) (provider.Match, bool, error) {
	body, err := h.client.get(ctx, fmt.Sprintf("/matches/%d", matchID), nil)
	if err != nil {
		return provider.Match{}, false, err
	}
	if body == nil {
		return provider.Match{}, false, nil
	}

	var m lsMatch
	if err := json.Unmarshal(body, &m); err != nil {
		return provider.Match{}, false, fmt.Errorf("decode match %d: %w", matchID, err)
	}
	return convertMatch(m), true, nil
}

func convertMatch(m lsMatch) provider.Match {
	match := provider.Match{
		HomeTeam:               m.HomeTeam.Name,
		AwayTeam:               m.AwayTeam.Name,
		FullTimeHome:           m.Outcome.HomeGoals,
		FullTimeAway:           m.Outcome.AwayGoals,
		HalfTimeHome:           m.HTOutcome.HomeGoals,
		HalfTimeAway:           m.HTOutcome.AwayGoals,
		UTCDate:                m.Start,
		Matchday:               m.RoundNumber,
		LiveScoreID:            m.DBID,
		LiveScoreCompetitionID: m.Competition.DBID,
		HomeGoalProbability:    m.HomeGoalProbability,
		AwayGoalProbability:    m.AwayGoalProbability,
		HomeForm:               m.HomeForm,
		AwayForm:               m.AwayForm,
	}
	for _, e := range m.PreviousEncounters {
		match.PreviousEncounters = append(match.PreviousEncounters, provider.Encounter{
			UTCDate:   e.Start,
			HomeTeam:  e.HomeTeam.Name,
			AwayTeam:  e.AwayTeam.Name,
			HomeScore: e.Outcome.HomeGoals,
			AwayScore: e.Outcome.AwayGoals,
		})
	}
	return match
}
