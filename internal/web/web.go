// Package web is the server-rendered frontend: standings, team and player
// dashboards, and the profile page driven by the favorites API. Pages are
// plain html/template; all stats data comes from the MLB client and is
// rendered best-effort, with missing optional fields shown as blanks.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/token"
	"github.com/albapepper/moneyball/internal/user"
)

//go:embed templates/*.gohtml
var tmplFS embed.FS

const sessionCookie = "moneyball_token"

// Handler holds the frontend's dependencies and parsed page templates.
type Handler struct {
	users  *user.Service
	issuer *token.Issuer
	mlb    *mlb.Client
	pages  map[string]*template.Template
}

// Routes builds the frontend router. Mounted under /web.
func Routes(users *user.Service, issuer *token.Issuer, mlbClient *mlb.Client) http.Handler {
	h := &Handler{
		users:  users,
		issuer: issuer,
		mlb:    mlbClient,
		pages:  make(map[string]*template.Template),
	}
	funcs := template.FuncMap{
		"add1": func(i int) int { return i + 1 },
	}
	for _, name := range []string{
		"home.gohtml", "teams.gohtml", "team.gohtml",
		"players.gohtml", "player.gohtml",
		"login.gohtml", "signup.gohtml", "profile.gohtml",
	} {
		h.pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(tmplFS,
			"templates/layout.gohtml", "templates/"+name))
	}

	r := chi.NewRouter()
	r.Use(h.withIdentity)

	r.Get("/", h.Home)
	r.Get("/teams", h.Teams)
	r.Get("/teams/{teamID}", h.TeamDashboard)
	r.Get("/players", h.Players)
	r.Get("/players/{playerID}", h.PlayerDashboard)

	r.Get("/signup", h.SignupForm)
	r.Post("/signup", h.Signup)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/profile", h.Profile)
		r.Post("/profile", h.ProfileUpdate)
		r.Post("/profile/delete", h.ProfileDelete)
		r.Post("/favorites/{kind}/{id}", h.Follow)
		r.Post("/favorites/{kind}/{id}/remove", h.Unfollow)
	})

	return r
}

// PageData is the layout-level view model shared by every page.
type PageData struct {
	Title string
	Email string // empty when not logged in
	Error string
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages[page].ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("render page", "page", page, "error", err)
	}
}

func (h *Handler) pageData(r *http.Request, title string) PageData {
	email, _ := auth.EmailFromContext(r.Context())
	return PageData{Title: title, Email: email}
}

// withIdentity resolves the session cookie to an email, mirroring the API's
// bearer middleware: invalid cookies are ignored, not rejected.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			if email, err := h.issuer.Verify(c.Value); err == nil {
				r = r.WithContext(auth.WithEmail(r.Context(), email))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.EmailFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/web/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setSession(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
