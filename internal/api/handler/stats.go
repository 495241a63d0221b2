package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/respond"
	"github.com/albapepper/moneyball/internal/cache"
	"github.com/albapepper/moneyball/internal/mlb"
)

// GetStandings proxies league standings from the MLB Stats API.
// @Summary League standings
// @Description Returns standings for a league. Response is raw JSON from the MLB Stats API.
// @Tags stats
// @Produce json
// @Param leagueId query int true "League ID" Enums(103, 104)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, err := strconv.Atoi(r.URL.Query().Get("leagueId"))
	if err != nil || (leagueID != mlb.AmericanLeagueID && leagueID != mlb.NationalLeagueID) {
		respond.WriteError(w, http.StatusBadRequest, "leagueId must be 103 (AL) or 104 (NL)")
		return
	}

	params := url.Values{"leagueId": {strconv.Itoa(leagueID)}}
	h.passthrough(w, r, "/standings", params,
		fmt.Sprintf("standings:%d", leagueID), cache.TTLStandings)
}

// GetTeams proxies the MLB club list.
// @Summary Teams
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	params := url.Values{"sportId": {"1"}}
	h.passthrough(w, r, "/teams", params, "teams", cache.TTLTeams)
}

// GetTeamStats proxies a team's season stat line.
// @Summary Team stats
// @Tags stats
// @Produce json
// @Param teamID path int true "Team ID"
// @Param group query string false "Stat group" Enums(hitting, pitching, fielding)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /teams/{teamID}/stats [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	id, group, ok := h.statsParams(w, r, "teamID")
	if !ok {
		return
	}
	params := url.Values{"stats": {"season"}, "group": {group}}
	h.passthrough(w, r, "/teams/"+strconv.Itoa(id)+"/stats", params,
		fmt.Sprintf("teamstats:%d:%s", id, group), cache.TTLStats)
}

// GetPlayer proxies a player bio.
// @Summary Player
// @Tags stats
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "playerID must be an integer")
		return
	}
	h.passthrough(w, r, "/people/"+strconv.Itoa(id), nil,
		fmt.Sprintf("player:%d", id), cache.TTLPlayer)
}

// GetPlayerStats proxies a player's season stat line.
// @Summary Player stats
// @Tags stats
// @Produce json
// @Param playerID path int true "Player ID"
// @Param group query string false "Stat group" Enums(hitting, pitching, fielding)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /players/{playerID}/stats [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	id, group, ok := h.statsParams(w, r, "playerID")
	if !ok {
		return
	}
	params := url.Values{"stats": {"season"}, "group": {group}}
	h.passthrough(w, r, "/people/"+strconv.Itoa(id)+"/stats", params,
		fmt.Sprintf("playerstats:%d:%s", id, group), cache.TTLStats)
}

func (h *Handler) statsParams(w http.ResponseWriter, r *http.Request, param string) (int, string, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, param+" must be an integer")
		return 0, "", false
	}
	group := r.URL.Query().Get("group")
	switch group {
	case "":
		group = mlb.GroupHitting
	case mlb.GroupHitting, mlb.GroupPitching, mlb.GroupFielding:
	default:
		respond.WriteError(w, http.StatusBadRequest, "group must be hitting, pitching, or fielding")
		return 0, "", false
	}
	return id, group, true
}

// passthrough serves an MLB Stats API response through the TTL cache with
// ETag revalidation.
func (h *Handler) passthrough(w http.ResponseWriter, r *http.Request, path string, params url.Values, cacheKey string, ttl time.Duration) {
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteRaw(w, data, etag, ttl, true)
		return
	}

	data, err := h.mlb.GetRaw(r.Context(), path, params)
	if err != nil {
		respond.WriteError(w, http.StatusBadGateway, "stats provider unavailable")
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteRaw(w, data, etag, ttl, false)
}
