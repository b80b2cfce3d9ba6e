package reconcile

import "github.com/openfooty/openfooty-data/internal/provider"

// Merge helpers. The rule throughout is last-write-wins: the enriching
// source overwrites the base wherever it carries a value, because the
// later source is more authoritative for overlapping keys (team name
// spelling is intentionally taken from the later source). Zero values on
// the enriching side never clobber existing data.

// mergeTeamDetail layers the structured provider's extended team record
// onto the list record (same-source two-step enrichment).
func mergeTeamDetail(dst *provider.Team, src provider.Team) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.ShortName != "" {
		dst.ShortName = src.ShortName
	}
	if src.Acronym != "" {
		dst.Acronym = src.Acronym
	}
	if src.Country != "" {
		dst.Country = src.Country
	}
	if src.CrestURL != "" {
		dst.CrestURL = src.CrestURL
	}
	if src.Contact.Address != "" {
		dst.Contact.Address = src.Contact.Address
	}
	if src.Contact.Phone != "" {
		dst.Contact.Phone = src.Contact.Phone
	}
	if src.Contact.Website != "" {
		dst.Contact.Website = src.Contact.Website
	}
	if src.Contact.Email != "" {
		dst.Contact.Email = src.Contact.Email
	}
	if src.YearFounded != 0 {
		dst.YearFounded = src.YearFounded
	}
	if src.ClubColours != "" {
		dst.ClubColours = src.ClubColours
	}
	if src.Stadium.Name != "" {
		dst.Stadium.Name = src.Stadium.Name
	}
	if len(src.Squad) > 0 {
		dst.Squad = src.Squad
	}
	if len(src.ActiveCompetitions) > 0 {
		dst.ActiveCompetitions = src.ActiveCompetitions
	}
}

// mergeLiveScoreTeam attaches the live-score ID and stadium geometry; the
// live-score name spelling wins on collision.
func mergeLiveScoreTeam(dst *provider.Team, src provider.Team) {
	dst.LiveScoreID = src.LiveScoreID
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Stadium.Lat != 0 {
		dst.Stadium.Lat = src.Stadium.Lat
	}
	if src.Stadium.Long != 0 {
		dst.Stadium.Long = src.Stadium.Long
	}
	if src.Stadium.Capacity != 0 {
		dst.Stadium.Capacity = src.Stadium.Capacity
	}
}

// mergeFantasyTeam attaches fantasy identifiers and strength ratings; the
// fantasy name (alias-corrected) wins on collision.
func mergeFantasyTeam(dst *provider.Team, src provider.Team) {
	dst.FantasyID = src.FantasyID
	dst.FantasyCode = src.FantasyCode
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Strength != nil {
		strength := *src.Strength
		dst.Strength = &strength
	}
}

// mergeLiveScoreMatch layers a paired live-score match onto the structured
// one. Team name spellings and scores come from the live-score side.
func mergeLiveScoreMatch(dst *provider.Match, src provider.Match) {
	dst.LiveScoreID = src.LiveScoreID
	dst.LiveScoreCompetitionID = src.LiveScoreCompetitionID
	if src.HomeTeam != "" {
		dst.HomeTeam = src.HomeTeam
	}
	if src.AwayTeam != "" {
		dst.AwayTeam = src.AwayTeam
	}
	if src.FullTimeHome != nil {
		dst.FullTimeHome = src.FullTimeHome
	}
	if src.FullTimeAway != nil {
		dst.FullTimeAway = src.FullTimeAway
	}
	if src.HomeGoalProbability != 0 {
		dst.HomeGoalProbability = src.HomeGoalProbability
	}
	if src.AwayGoalProbability != 0 {
		dst.AwayGoalProbability = src.AwayGoalProbability
	}
}

// mergeLiveScoreDetail layers the per-match detail fetch (form, previous
// encounters, probabilities) onto an already-paired match.
func mergeLiveScoreDetail(dst *provider.Match, src provider.Match) {
	if src.HomeGoalProbability != 0 {
		dst.HomeGoalProbability = src.HomeGoalProbability
	}
	if src.AwayGoalProbability != 0 {
		dst.AwayGoalProbability = src.AwayGoalProbability
	}
	if len(src.HomeForm) > 0 {
		dst.HomeForm = src.HomeForm
	}
	if len(src.AwayForm) > 0 {
		dst.AwayForm = src.AwayForm
	}
	if len(src.PreviousEncounters) > 0 {
		dst.PreviousEncounters = src.PreviousEncounters
	}
}

// mergeFantasyMatch layers a paired fantasy fixture onto the structured
// match: identifiers, difficulty ratings, and per-player event stats.
func mergeFantasyMatch(dst *provider.Match, src provider.Match) {
	dst.FantasyMatchID = src.FantasyMatchID
	dst.FantasyMatchCode = src.FantasyMatchCode
	dst.FantasyGameWeek = src.FantasyGameWeek
	dst.FantasyHomeTeamID = src.FantasyHomeTeamID
	dst.FantasyAwayTeamID = src.FantasyAwayTeamID
	dst.HomeTeamDifficulty = src.HomeTeamDifficulty
	dst.AwayTeamDifficulty = src.AwayTeamDifficulty
	if len(src.Events) > 0 {
		dst.Events = src.Events
	}
}

// mergePlayerDetail layers the fantasy per-player detail (season
// summaries, gameweek history, future fixtures) onto the base player.
func mergePlayerDetail(dst *provider.Player, src provider.Player) {
	if len(src.SeasonSummaries) > 0 {
		dst.SeasonSummaries = src.SeasonSummaries
	}
	if len(src.MatchHistory) > 0 {
		dst.MatchHistory = src.MatchHistory
	}
	if len(src.FutureFixtures) > 0 {
		dst.FutureFixtures = src.FutureFixtures
	}
}
