package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/user"
)

type authFormData struct {
	PageData
	FormEmail string
	FirstName string
}

// SignupForm renders the registration page.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.gohtml", authFormData{PageData: h.pageData(r, "Sign Up")})
}

// Signup registers an account and starts a session.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	firstName := r.PostFormValue("firstName")

	data := authFormData{PageData: h.pageData(r, "Sign Up"), FormEmail: email, FirstName: firstName}
	if email == "" || password == "" || firstName == "" {
		data.Error = "all fields are required"
		h.render(w, r, "signup.gohtml", data)
		return
	}

	pub, err := h.users.Register(r.Context(), email, password, firstName)
	if err != nil {
		data.Error = "that email is already registered"
		h.render(w, r, "signup.gohtml", data)
		return
	}

	h.startSession(w, r, pub.Email)
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.gohtml", authFormData{PageData: h.pageData(r, "Log In")})
}

// Login authenticates and starts a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	pub, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		data := authFormData{PageData: h.pageData(r, "Log In"), FormEmail: email}
		data.Error = "invalid email or password"
		h.render(w, r, "login.gohtml", data)
		return
	}

	h.startSession(w, r, pub.Email)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, email string) {
	tok, err := h.issuer.Create(email)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.setSession(w, tok)
	http.Redirect(w, r, "/web/profile", http.StatusSeeOther)
}

// Logout clears the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	http.Redirect(w, r, "/web/", http.StatusSeeOther)
}

type favoriteTeamView struct {
	ID   int
	Name string
}

type favoritePlayerView struct {
	ID       int
	Name     string
	Team     string
	Position string
}

type profileData struct {
	PageData
	User    user.Detail
	Teams   []favoriteTeamView
	Players []favoritePlayerView
}

// Profile renders the personalized dashboard: profile fields plus the
// followed teams and players with their current names resolved live.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())
	detail, err := h.users.Get(r.Context(), email)
	if err != nil {
		h.clearSession(w)
		http.Redirect(w, r, "/web/login", http.StatusSeeOther)
		return
	}

	data := profileData{PageData: h.pageData(r, "My Dashboard"), User: detail}

	for _, id := range detail.FavoriteTeamIDs {
		view := favoriteTeamView{ID: id, Name: "Team #" + strconv.Itoa(id)}
		if team, err := h.mlb.Team(r.Context(), id); err == nil && team.Name != "" {
			view.Name = team.Name
		}
		data.Teams = append(data.Teams, view)
	}
	for _, id := range detail.FavoritePlayerIDs {
		view := favoritePlayerView{ID: id, Name: "Player #" + strconv.Itoa(id)}
		if p, err := h.mlb.Player(r.Context(), id); err == nil && p.FullName != "" {
			view.Name = p.FullName
			view.Team = p.CurrentTeam.Name
			view.Position = p.PrimaryPosition.Name
		}
		data.Players = append(data.Players, view)
	}

	h.render(w, r, "profile.gohtml", data)
}

// ProfileUpdate applies the profile edit form.
func (h *Handler) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	var patch user.Patch
	if v := r.PostFormValue("firstName"); v != "" {
		patch.FirstName = &v
	}
	if v := r.PostFormValue("password"); v != "" {
		patch.Password = &v
	}

	if _, err := h.users.Update(r.Context(), email, patch); err != nil {
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/web/profile", http.StatusSeeOther)
}

// ProfileDelete removes the account and ends the session.
func (h *Handler) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())
	if err := h.users.Remove(r.Context(), email); err != nil {
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	h.clearSession(w)
	http.Redirect(w, r, "/web/", http.StatusSeeOther)
}

// Follow adds a favorite from a dashboard form. A duplicate add redirects
// back unchanged; the button only shows for non-favorites anyway.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorite(w, r, h.users.AddFavorite)
}

// Unfollow removes a favorite from a dashboard form.
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorite(w, r, h.users.RemoveFavorite)
}

func (h *Handler) mutateFavorite(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error)) {
	kind := user.FavoriteKind(chi.URLParam(r, "kind"))
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if !kind.Valid() || err != nil {
		http.NotFound(w, r)
		return
	}

	email, _ := auth.EmailFromContext(r.Context())
	if _, err := op(r.Context(), email, kind, id); err != nil && !errors.Is(err, user.ErrAlreadyFavorite) {
		http.Error(w, "favorite update failed", http.StatusInternalServerError)
		return
	}

	back := r.Referer()
	if back == "" {
		back = "/web/profile"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
