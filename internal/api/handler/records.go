package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openfooty/openfooty-data/internal/api/respond"
	"github.com/openfooty/openfooty-data/internal/cache"
	"github.com/openfooty/openfooty-data/internal/config"
)

// serveRecord runs one prepared read, with TTL cache and ETag handling.
// Every record endpoint funnels through here; only parameter parsing
// differs between them.
func (h *Handler) serveRecord(w http.ResponseWriter, r *http.Request,
	cacheKey string, ttl time.Duration, stmt string, args ...interface{}) {

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	var raw []byte
	err := h.pool.QueryRow(r.Context(), stmt, args...).Scan(&raw)
	if err != nil || raw == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// ListCompetitions returns the competition catalogue.
// @Summary List competitions
// @Description Returns all reconciled competitions.
// @Tags competitions
// @Produce json
// @Success 200 {array} provider.Competition
// @Router /competitions [get]
func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	h.serveRecord(w, r, "competitions", cache.TTLCompetitions, "list_competitions")
}

// GetCompetition returns one competition.
// @Summary Get competition
// @Description Returns one reconciled competition by its structured-provider ID.
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} provider.Competition
// @Failure 404 {object} respond.ErrorResponse
// @Router /competitions/{competitionID} [get]
func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "competitionID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Competition ID must be an integer")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("competition:%d", id), cache.TTLCompetitions, "get_competition", id)
}

// ListTeams returns the teams of one competition.
// @Summary List teams
// @Description Returns the reconciled teams of a competition.
// @Tags teams
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {array} provider.Team
// @Router /competitions/{competitionID}/teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "competitionID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Competition ID must be an integer")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("teams:%d", id), cache.TTLTeams, "list_teams", id)
}

// GetTeam returns one team.
// @Summary Get team
// @Description Returns one reconciled team by its structured-provider ID.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} provider.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "teamID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team ID must be an integer")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("team:%d", id), cache.TTLTeams, "get_team", id)
}

// ListMatches returns the matches of one gameweek.
// @Summary List matches
// @Description Returns the reconciled matches of one gameweek of one season.
// @Tags matches
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param gameweek query int true "Gameweek number"
// @Param season query int false "Season year (defaults to current)"
// @Success 200 {array} provider.Match
// @Failure 400 {object} respond.ErrorResponse
// @Router /competitions/{competitionID}/matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "competitionID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Competition ID must be an integer")
		return
	}

	gameweek, err := strconv.Atoi(r.URL.Query().Get("gameweek"))
	if err != nil || gameweek < 1 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_GAMEWEEK", "gameweek must be a positive integer")
		return
	}

	season := config.DefaultSeason
	if s := r.URL.Query().Get("season"); s != "" {
		season, err = strconv.Atoi(s)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must be an integer")
			return
		}
	}

	key := fmt.Sprintf("matches:%d:%d:%d", id, gameweek, season)
	h.serveRecord(w, r, key, cache.TTLMatches, "list_matches", id, gameweek, strconv.Itoa(season))
}

// GetMatch returns one match.
// @Summary Get match
// @Description Returns one reconciled match by its structured-provider ID.
// @Tags matches
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} provider.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "matchID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match ID must be an integer")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("match:%d", id), cache.TTLMatches, "get_match", id)
}

// ListPlayers returns the players of one fantasy team.
// @Summary List players
// @Description Returns the reconciled players of one fantasy team.
// @Tags players
// @Produce json
// @Param fantasy_team_id query int true "Fantasy team ID"
// @Success 200 {array} provider.Player
// @Failure 400 {object} respond.ErrorResponse
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.URL.Query().Get("fantasy_team_id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_TEAM", "fantasy_team_id query parameter is required")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("players:%d", teamID), cache.TTLPlayers, "list_players", teamID)
}

// GetPlayer returns one player.
// @Summary Get player
// @Description Returns one reconciled player by fantasy ID.
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} provider.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "playerID")
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player ID must be an integer")
		return
	}
	h.serveRecord(w, r, fmt.Sprintf("player:%d", id), cache.TTLPlayers, "get_player", id)
}
