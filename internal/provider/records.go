// Package provider defines the common record vocabulary shared by all
// upstream football data sources, and the adapter contracts the
// reconciliation driver consumes.
//
// Records are plain values: every "ID" field is a provider-specific
// identifier, never a shared key. A zero ID means the record has not been
// matched against that provider.
package provider

import "time"

// Competition is a league or cup as described by the structured provider,
// optionally enriched with the live-score provider's identifier.
type Competition struct {
	Name           string `json:"name"`
	Code           string `json:"code,omitempty"`
	Location       string `json:"location"`
	FootballDataID int    `json:"football_data_id"`
	LiveScoreID    int    `json:"live_score_id,omitempty"`
}

// Stadium describes a team's home ground. Lat/Long/Capacity come from the
// live-score provider; Name comes from the structured provider.
type Stadium struct {
	Name     string  `json:"name,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Long     float64 `json:"long,omitempty"`
	Capacity int     `json:"capacity,omitempty"`
}

// Contact holds the structured provider's club contact details.
type Contact struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Strength holds the fantasy provider's numeric team ratings.
type Strength struct {
	Overall     int `json:"overall"`
	OverallHome int `json:"overall_home"`
	OverallAway int `json:"overall_away"`
	AttackHome  int `json:"attack_home"`
	AttackAway  int `json:"attack_away"`
	DefenceHome int `json:"defence_home"`
	DefenceAway int `json:"defence_away"`
}

// SquadMember is one entry of the structured provider's roster for a team.
type SquadMember struct {
	Name           string `json:"name"`
	Position       string `json:"position,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	CountryOfBirth string `json:"country_of_birth,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	ShirtNumber    int    `json:"shirt_number,omitempty"`
	Role           string `json:"role,omitempty"`
}

// Team is a club record. It may carry up to three provider IDs; a missing
// one means the team failed to match in that provider, which is partial
// enrichment, not an error.
type Team struct {
	Name        string  `json:"name"`
	ShortName   string  `json:"short_name,omitempty"`
	Acronym     string  `json:"acronym,omitempty"`
	Country     string  `json:"country,omitempty"`
	CrestURL    string  `json:"crest_url,omitempty"`
	Contact     Contact `json:"contact"`
	YearFounded int     `json:"year_founded,omitempty"`
	ClubColours string  `json:"club_colours,omitempty"`
	Stadium     Stadium `json:"stadium"`

	Squad              []SquadMember `json:"squad,omitempty"`
	ActiveCompetitions []Competition `json:"active_competitions,omitempty"`

	FootballDataID int       `json:"football_data_id,omitempty"`
	LiveScoreID    int       `json:"live_score_id,omitempty"`
	FantasyID      int       `json:"fantasy_id,omitempty"`
	FantasyCode    int       `json:"fantasy_code,omitempty"`
	Strength       *Strength `json:"strength,omitempty"`
}

// Encounter is one historical head-to-head meeting between two sides.
type Encounter struct {
	UTCDate   time.Time `json:"utc_date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

// MatchEvent is a per-player stat entry attached to a fantasy fixture,
// e.g. one goal scored by one player on one side.
type MatchEvent struct {
	Stat        string `json:"stat"`
	PlayerCode  int    `json:"player_code"`
	Value       int    `json:"value"`
	Side        string `json:"side"` // "home" or "away"
}

// Match is a fixture record. Score fields are pointers because extra-time
// and penalty scores are legitimately absent for most matches, and the
// full-time score is absent until a match finishes.
type Match struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`

	FullTimeHome  *int `json:"ft_home,omitempty"`
	FullTimeAway  *int `json:"ft_away,omitempty"`
	HalfTimeHome  *int `json:"ht_home,omitempty"`
	HalfTimeAway  *int `json:"ht_away,omitempty"`
	ExtraTimeHome *int `json:"et_home,omitempty"`
	ExtraTimeAway *int `json:"et_away,omitempty"`
	PenaltyHome   *int `json:"pen_home,omitempty"`
	PenaltyAway   *int `json:"pen_away,omitempty"`

	UTCDate         time.Time `json:"utc_date"`
	Matchday        int       `json:"matchday"`
	Season          string    `json:"season,omitempty"`
	SeasonStartDate string    `json:"season_start_date,omitempty"`
	SeasonEndDate   string    `json:"season_end_date,omitempty"`
	Status          string    `json:"status,omitempty"`
	Winner          string    `json:"winner,omitempty"`

	FootballDataID int `json:"football_data_id,omitempty"`
	LiveScoreID    int `json:"live_score_id,omitempty"`
	// LiveScoreCompetitionID scopes a live-score match to its competition;
	// the provider's window query is not competition-scoped.
	LiveScoreCompetitionID int `json:"live_score_competition_id,omitempty"`

	// Live-score enrichment.
	HomeGoalProbability float64     `json:"home_goal_probability,omitempty"`
	AwayGoalProbability float64     `json:"away_goal_probability,omitempty"`
	HomeForm            []string    `json:"home_form,omitempty"`
	AwayForm            []string    `json:"away_form,omitempty"`
	PreviousEncounters  []Encounter `json:"previous_encounters,omitempty"`

	// Fantasy enrichment.
	FantasyMatchID     int          `json:"fantasy_match_id,omitempty"`
	FantasyMatchCode   int          `json:"fantasy_match_code,omitempty"`
	FantasyGameWeek    int          `json:"fantasy_game_week,omitempty"`
	FantasyHomeTeamID  int          `json:"fantasy_home_team_id,omitempty"`
	FantasyAwayTeamID  int          `json:"fantasy_away_team_id,omitempty"`
	HomeTeamDifficulty int          `json:"home_team_difficulty,omitempty"`
	AwayTeamDifficulty int          `json:"away_team_difficulty,omitempty"`
	Events             []MatchEvent `json:"events,omitempty"`
}

// SeasonSummary is one historical season line for a player, from the
// fantasy provider.
type SeasonSummary struct {
	SeasonName      string `json:"season_name"`
	StartPrice      int    `json:"start_price"`
	EndPrice        int    `json:"end_price"`
	TotalPoints     int    `json:"total_points"`
	Minutes         int    `json:"minutes"`
	Goals           int    `json:"goals"`
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

// GameweekEntry is one played gameweek for a player, from the fantasy
// provider's per-player history.
type GameweekEntry struct {
	KickoffTime      time.Time `json:"kickoff_time"`
	GameWeek         int       `json:"game_week"`
	HomeScore        *int      `json:"home_score,omitempty"`
	AwayScore        *int      `json:"away_score,omitempty"`
	PlayedAtHome     bool      `json:"played_at_home"`
	Points           int       `json:"points"`
	Value            int       `json:"value"`
	TransfersBalance int       `json:"transfers_balance"`
	SelectedBy       int       `json:"selected_by"`
	TransfersIn      int       `json:"transfers_in"`
	TransfersOut     int       `json:"transfers_out"`
	Minutes          int       `json:"minutes"`
	Goals            int       `json:"goals"`
	Assists          int       `json:"assists"`
	CleanSheet       bool      `json:"clean_sheet"`
	GoalsConceded    int       `json:"goals_conceded"`
	OwnGoals         int       `json:"own_goals"`
	PenaltiesSaved   int       `json:"penalties_saved"`
	PenaltiesMissed  int       `json:"penalties_missed"`
	YellowCards      int       `json:"yellow_cards"`
	RedCards         int       `json:"red_cards"`
	Saves            int       `json:"saves"`
	Bonus            int       `json:"bonus"`
	Influence        float64   `json:"influence"`
	Creativity       float64   `json:"creativity"`
	Threat           float64   `json:"threat"`
	ICTIndex         float64   `json:"ict_index"`
	OpponentTeamID   int       `json:"opponent_team_id"`
}

// Player is a footballer record. Fantasy fields are populated by the
// fantasy provider; identity fields (name, position, shirt number) may also
// come from a structured-provider squad.
type Player struct {
	Name        string `json:"name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	WebName     string `json:"web_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Position    string `json:"position,omitempty"`
	ShirtNumber int    `json:"shirt_number,omitempty"`
	Team        string `json:"team,omitempty"`

	FantasyID       int `json:"fantasy_id,omitempty"`
	FantasyCode     int `json:"fantasy_code,omitempty"`
	FantasyTeamID   int `json:"fantasy_team_id,omitempty"`
	FantasyTeamCode int `json:"fantasy_team_code,omitempty"`

	Status              string  `json:"status,omitempty"`
	News                string  `json:"news,omitempty"`
	Price               int     `json:"price,omitempty"`
	Form                float64 `json:"form,omitempty"`
	PointsPerGame       float64 `json:"points_per_game,omitempty"`
	SelectionPercentage float64 `json:"selection_percentage,omitempty"`
	TotalPoints         int     `json:"total_points,omitempty"`
	WeekPoints          int     `json:"week_points,omitempty"`

	Minutes         int     `json:"minutes,omitempty"`
	Goals           int     `json:"goals,omitempty"`
	Assists         int     `json:"assists,omitempty"`
	CleanSheets     int     `json:"clean_sheets,omitempty"`
	GoalsConceded   int     `json:"goals_conceded,omitempty"`
	OwnGoals        int     `json:"own_goals,omitempty"`
	PenaltiesSaved  int     `json:"penalties_saved,omitempty"`
	PenaltiesMissed int     `json:"penalties_missed,omitempty"`
	YellowCards     int     `json:"yellow_cards,omitempty"`
	RedCards        int     `json:"red_cards,omitempty"`
	Saves           int     `json:"saves,omitempty"`
	WeekBonus       int     `json:"week_bonus,omitempty"`
	TotalBonus      int     `json:"total_bonus,omitempty"`
	Influence       float64 `json:"influence,omitempty"`
	Creativity      float64 `json:"creativity,omitempty"`
	Threat          float64 `json:"threat,omitempty"`
	ICTIndex        float64 `json:"ict_index,omitempty"`
	GameWeek        int     `json:"game_week,omitempty"`

	SeasonSummaries []SeasonSummary `json:"season_summaries,omitempty"`
	MatchHistory    []GameweekEntry `json:"match_history,omitempty"`
	FutureFixtures  []int           `json:"future_fixtures,omitempty"`
}
