package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/api/respond"
	"github.com/albapepper/moneyball/internal/user"
)

type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	Password  *string `json:"password" validate:"omitempty,min=5"`
}

// CurrentUser returns the logged-in user's detail view.
// @Summary Current user
// @Description Returns the logged-in user's profile and favorite collections.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]user.Detail
// @Failure 401 {object} respond.ErrorResponse
// @Router /user [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())
	detail, err := h.users.Get(r.Context(), email)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]user.Detail{"user": detail})
}

// UpdateUser applies a partial profile update to the caller's own account.
// @Summary Update user
// @Description Partially updates firstName and/or password for the caller's own account.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Param body body updateUserRequest true "Patch"
// @Success 200 {object} map[string]user.Public
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /user/{email} [patch]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pub, err := h.users.Update(r.Context(), chi.URLParam(r, "email"), user.Patch{
		FirstName: req.FirstName,
		Password:  req.Password,
	})
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]user.Public{"user": pub})
}

// DeleteUser removes the caller's own account.
// @Summary Delete user
// @Description Deletes the caller's own account and its favorites.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Success 200 {object} map[string]string
// @Failure 401 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /user/{email} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := h.users.Remove(r.Context(), email); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"deleted": email})
}
