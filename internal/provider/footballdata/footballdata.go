package footballdata

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

// Handler fetches and normalizes records from football-data.org. It
// implements provider.StructuredProvider.
type Handler struct {
	client *Client
	logger *slog.Logger
}

// NewHandler creates a Handler with the free-tier rate limit.
func NewHandler(apiKey string, logger *slog.Logger) *Handler {
	return &Handler{
		client: NewClient(apiKey, 10, logger),
		logger: logger,
	}
}

// --------------------------------------------------------------------------
// Wire types
// --------------------------------------------------------------------------

type fdArea struct {
	Name string `json:"name"`
}

type fdCompetition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Area fdArea `json:"area"`
}

type fdTeam struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	TLA         string `json:"tla"`
	Area        fdArea `json:"area"`
	CrestURL    string `json:"crestUrl"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Founded     int    `json:"founded"`
	ClubColors  string `json:"clubColors"`
	Venue       string `json:"venue"`
	Squad       []fdSquadMember `json:"squad"`
	ActiveComps []fdCompetition `json:"activeCompetitions"`
}

type fdSquadMember struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	DateOfBirth    string `json:"dateOfBirth"`
	CountryOfBirth string `json:"countryOfBirth"`
	Nationality    string `json:"nationality"`
	ShirtNumber    int    `json:"shirtNumber"`
	Role           string `json:"role"`
}

type fdScorePair struct {
	HomeTeam *int `json:"homeTeam"`
	AwayTeam *int `json:"awayTeam"`
}

type fdMatch struct {
	ID     int `json:"id"`
	Season struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"season"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	Matchday int       `json:"matchday"`
	Score    struct {
		Winner    string      `json:"winner"`
		FullTime  fdScorePair `json:"fullTime"`
		HalfTime  fdScorePair `json:"halfTime"`
		ExtraTime fdScorePair `json:"extraTime"`
		Penalties fdScorePair `json:"penalties"`
	} `json:"score"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
}

// --------------------------------------------------------------------------
// provider.StructuredProvider
// --------------------------------------------------------------------------

// Competitions lists every competition the API exposes.
func (h *Handler) Competitions(ctx context.Context) ([]provider.Competition, error) {
	body, err := h.client.get(ctx, "/competitions", nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var payload struct {
		Competitions []fdCompetition `json:"competitions"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode competitions: %w", err)
	}

	out := make([]provider.Competition, 0, len(payload.Competitions))
	for _, c := range payload.Competitions {
		out = append(out, provider.Competition{
			Name:           c.Name,
			Code:           c.Code,
			Location:       c.Area.Name,
			FootballDataID: c.ID,
		})
	}
	return out, nil
}

// Competition fetches one competition. found is false when the API has no
// such competition. Not part of provider.StructuredProvider; the catalogue
// listing covers reconciliation, this covers targeted lookups.
func (h *Handler) Competition(ctx context.Context, competitionID int) (provider.Competition, bool, error) {
	body, err := h.client.get(ctx, fmt.Sprintf("/competitions/%d", competitionID), nil)
	if err != nil {
		return provider.Competition{}, false, err
	}
	if body == nil {
		return provider.Competition{}, false, nil
	}

	var c fdCompetition
	if err := json.Unmarshal(body, &c); err != nil {
		return provider.Competition{}, false, fmt.Errorf("decode competition %d: %w", competitionID, err)
	}
	return provider.Competition{
		Name:           c.Name,
		Code:           c.Code,
		Location:       c.Area.Name,
		FootballDataID: c.ID,
	}, true, nil
}

// CompetitionTeams lists the teams of a competition for one season.
func (h *Handler) CompetitionTeams(ctx context.Context, competitionID, season int) ([]provider.Team, error) {
	params := url.Values{"season": {strconv.Itoa(season)}}
	body, err := h.client.get(ctx, fmt.Sprintf("/competitions/%d/teams", competitionID), params)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var payload struct {
		Teams []fdTeam `json:"teams"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	out := make([]provider.Team, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		out = append(out, convertTeam(t))
	}
	return out, nil
}

// TeamDetail fetches one team's extended record including squad and active
// competitions.
func (h *Handler) TeamDetail(ctx context.Context, teamID int) (provider.Team, bool, error) {
	body, err := h.client.get(ctx, fmt.Sprintf("/teams/%d", teamID), nil)
	if err != nil {
		return provider.Team{}, false, err
	}
	if body == nil {
		return provider.Team{}, false, nil
	}

	var t fdTeam
	if err := json.Unmarshal(body, &t); err != nil {
		return provider.Team{}, false, fmt.Errorf("decode team %d: %w", teamID, err)
	}
	return convertTeam(t), true, nil
}

// CompetitionMatches lists the matches of one gameweek of one season.
func (h *Handler) CompetitionMatches(ctx context.Context, competitionID, matchday, season int) ([]provider.Match, error) {
	params := url.Values{
		"matchday": {strconv.Itoa(matchday)},
		"season":   {strconv.Itoa(season)},
	}
	body, err := h.client.get(ctx, fmt.Sprintf("/competitions/%d/matches", competitionID), params)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var payload struct {
		Matches []fdMatch `json:"matches"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}

	out := make([]provider.Match, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		out = append(out, provider.Match{
			HomeTeam:        m.HomeTeam.Name,
			AwayTeam:        m.AwayTeam.Name,
			FullTimeHome:    m.Score.FullTime.HomeTeam,
			FullTimeAway:    m.Score.FullTime.AwayTeam,
			HalfTimeHome:    m.Score.HalfTime.HomeTeam,
			HalfTimeAway:    m.Score.HalfTime.AwayTeam,
			ExtraTimeHome:   m.Score.ExtraTime.HomeTeam,
			ExtraTimeAway:   m.Score.ExtraTime.AwayTeam,
			PenaltyHome:     m.Score.Penalties.HomeTeam,
			PenaltyAway:     m.Score.Penalties.AwayTeam,
			UTCDate:         m.UTCDate,
			Matchday:        m.Matchday,
			Season:          strconv.Itoa(season),
			SeasonStartDate: m.Season.StartDate,
			SeasonEndDate:   m.Season.EndDate,
			Status:          m.Status,
			Winner:          m.Score.Winner,
			FootballDataID:  m.ID,
		})
	}
	return out, nil
}

func convertTeam(t fdTeam) provider.Team {
	team := provider.Team{
		Name:      t.Name,
		ShortName: t.ShortName,
		Acronym:   t.TLA,
		Country:   t.Area.Name,
		CrestURL:  t.CrestURL,
		Contact: provider.Contact{
			Address: t.Address,
			Phone:   t.Phone,
			Website: t.Website,
			Email:   t.Email,
		},
		YearFounded:    t.Founded,
		ClubColours:    t.ClubColors,
		Stadium:        provider.Stadium{Name: t.Venue},
		FootballDataID: t.ID,
	}
	for _, m := range t.Squad {
		team.Squad = append(team.Squad, provider.SquadMember{
			Name:           m.Name,
			Position:       m.Position,
			DateOfBirth:    m.DateOfBirth,
			CountryOfBirth: m.CountryOfBirth,
			Nationality:    m.Nationality,
			ShirtNumber:    m.ShirtNumber,
			Role:           m.Role,
		})
	}
	for _, c := range t.ActiveComps {
		team.ActiveCompetitions = append(team.ActiveCompetitions, provider.Competition{
			Name:           c.Name,
			Code:           c.Code,
			Location:       c.Area.Name,
			FootballDataID: c.ID,
		})
	}
	return team
}
