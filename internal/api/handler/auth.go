package handler

import (
	"encoding/json"
	"net/http"

	"github.com/albapepper/moneyball/internal/api/respond"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"firstName" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// decodeAndValidate decodes the request body into dst and validates it.
// Reports whether the body was acceptable; on failure the 400 has already
// been written.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respond.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// Register creates an account and returns a token for it.
// @Summary Register
// @Description Creates a new account and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "New account"
// @Success 201 {object} map[string]string
// @Failure 400 {object} respond.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pub, err := h.users.Register(r.Context(), req.Email, req.Password, req.FirstName)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}

	tok, err := h.issuer.Create(pub.Email)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]string{"token": tok})
}

// Login authenticates an account and returns a token for it.
// @Summary Login
// @Description Verifies credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pub, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}

	tok, err := h.issuer.Create(pub.Email)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"token": tok})
}
