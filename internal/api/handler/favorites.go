package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/api/respond"
	"github.com/albapepper/moneyball/internal/user"
)

// Response keys differ per collection: {favoriteTeams} vs {favoritePlayers}.
func favoritesKey(kind user.FavoriteKind) string {
	if kind == user.FavoritePlayers {
		return "favoritePlayers"
	}
	return "favoriteTeams"
}

func writeFavorites(w http.ResponseWriter, kind user.FavoriteKind, ids []int) {
	respond.WriteJSON(w, http.StatusOK, map[string][]int{favoritesKey(kind): ids})
}

// ListFavoriteTeams returns the caller's favorite teams.
// @Summary List favorite teams
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]int
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/teams [get]
func (h *Handler) ListFavoriteTeams(w http.ResponseWriter, r *http.Request) {
	h.listFavorites(w, r, user.FavoriteTeams)
}

// ListFavoritePlayers returns the caller's favorite players.
// @Summary List favorite players
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]int
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/players [get]
func (h *Handler) ListFavoritePlayers(w http.ResponseWriter, r *http.Request) {
	h.listFavorites(w, r, user.FavoritePlayers)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request, kind user.FavoriteKind) {
	email, _ := auth.EmailFromContext(r.Context())
	ids, err := h.users.Favorites(r.Context(), email, kind)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	writeFavorites(w, kind, ids)
}

// AddFavoriteTeam adds a team id to the caller's favorites.
// @Summary Add favorite team
// @Description Adds a team id. Adding an id that is already a favorite fails with 400.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param teamId path int true "Team ID"
// @Success 200 {object} map[string][]int
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/teams/{teamId} [post]
func (h *Handler) AddFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, user.FavoriteTeams, "teamId", h.users.AddFavorite)
}

// RemoveFavoriteTeam removes a team id from the caller's favorites.
// @Summary Remove favorite team
// @Description Removes a team id. Removing an id that is not a favorite is a no-op.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param teamId path int true "Team ID"
// @Success 200 {object} map[string][]int
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/teams/{teamId} [delete]
func (h *Handler) RemoveFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, user.FavoriteTeams, "teamId", h.users.RemoveFavorite)
}

// AddFavoritePlayer adds a player id to the caller's favorites.
// @Summary Add favorite player
// @Description Adds a player id. Adding an id that is already a favorite fails with 400.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param playerId path int true "Player ID"
// @Success 200 {object} map[string][]int
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/players/{playerId} [post]
func (h *Handler) AddFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, user.FavoritePlayers, "playerId", h.users.AddFavorite)
}

// RemoveFavoritePlayer removes a player id from the caller's favorites.
// @Summary Remove favorite player
// @Description Removes a player id. Removing an id that is not a favorite is a no-op.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param playerId path int true "Player ID"
// @Success 200 {object} map[string][]int
// @Failure 401 {object} respond.ErrorResponse
// @Router /favorites/players/{playerId} [delete]
func (h *Handler) RemoveFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, user.FavoritePlayers, "playerId", h.users.RemoveFavorite)
}

type favoriteMutation func(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error)

func (h *Handler) mutateFavorites(w http.ResponseWriter, r *http.Request, kind user.FavoriteKind, param string, op favoriteMutation) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, param+" must be an integer")
		return
	}

	email, _ := auth.EmailFromContext(r.Context())
	ids, err := op(r.Context(), email, kind, id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	writeFavorites(w, kind, ids)
}
