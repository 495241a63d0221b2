package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/user"
)

type homeData struct {
	PageData
	American []mlb.TeamRecord
	National []mlb.TeamRecord
}

// Home renders AL and NL standings sorted by winning percentage.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{PageData: h.pageData(r, "League Standings")}

	if recs, err := h.mlb.Standings(r.Context(), mlb.AmericanLeagueID); err == nil {
		data.American = mlb.LeagueTable(recs)
	} else {
		data.Error = "standings are temporarily unavailable"
	}
	if recs, err := h.mlb.Standings(r.Context(), mlb.NationalLeagueID); err == nil {
		data.National = mlb.LeagueTable(recs)
	}

	h.render(w, r, "home.gohtml", data)
}

type teamsData struct {
	PageData
	Teams []mlb.Team
}

// Teams renders the club index.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	data := teamsData{PageData: h.pageData(r, "Teams")}
	teams, err := h.mlb.Teams(r.Context())
	if err != nil {
		data.Error = "teams are temporarily unavailable"
	}
	data.Teams = teams
	h.render(w, r, "teams.gohtml", data)
}

type teamData struct {
	PageData
	Team       mlb.Team
	Hitting    mlb.StatLine
	Pitching   mlb.StatLine
	Roster     []mlb.RosterEntry
	IsFavorite bool
}

// TeamDashboard renders one club: season stats, roster, follow state.
func (h *Handler) TeamDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	team, err := h.mlb.Team(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := teamData{PageData: h.pageData(r, team.Name), Team: team}
	data.Hitting, _ = h.mlb.TeamStats(r.Context(), id, mlb.GroupHitting)
	data.Pitching, _ = h.mlb.TeamStats(r.Context(), id, mlb.GroupPitching)
	data.Roster, _ = h.mlb.Roster(r.Context(), id)
	data.IsFavorite = h.isFavorite(r, user.FavoriteTeams, id)

	h.render(w, r, "team.gohtml", data)
}

type playersData struct {
	PageData
	Query   string
	Players []mlb.Player
}

// Players renders the player search page.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	data := playersData{PageData: h.pageData(r, "Players")}
	data.Query = r.URL.Query().Get("q")
	if data.Query != "" {
		players, err := h.mlb.PlayerSearch(r.Context(), data.Query)
		if err != nil {
			data.Error = "player search is temporarily unavailable"
		}
		data.Players = players
	}
	h.render(w, r, "players.gohtml", data)
}

type playerData struct {
	PageData
	Player     mlb.Player
	Group      string
	Stats      mlb.StatLine
	IsFavorite bool
}

// PlayerDashboard renders one player with a selectable stat group.
func (h *Handler) PlayerDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	player, err := h.mlb.Player(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	group := r.URL.Query().Get("group")
	switch group {
	case mlb.GroupPitching, mlb.GroupFielding:
	default:
		group = mlb.GroupHitting
	}

	data := playerData{
		PageData: h.pageData(r, player.FullName),
		Player:   player,
		Group:    group,
	}
	data.Stats, _ = h.mlb.PlayerStats(r.Context(), id, group)
	data.IsFavorite = h.isFavorite(r, user.FavoritePlayers, id)

	h.render(w, r, "player.gohtml", data)
}

func (h *Handler) isFavorite(r *http.Request, kind user.FavoriteKind, id int) bool {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		return false
	}
	ids, err := h.users.Favorites(r.Context(), email, kind)
	if err != nil {
		return false
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
