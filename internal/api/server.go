// Package api wires the Chi router: middleware stack, REST routes, stats
// passthrough, and the server-rendered web frontend.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/moneyball/internal/api/auth"
	"github.com/albapepper/moneyball/internal/api/handler"
	"github.com/albapepper/moneyball/internal/cache"
	"github.com/albapepper/moneyball/internal/config"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/token"
	"github.com/albapepper/moneyball/internal/user"
	"github.com/albapepper/moneyball/internal/web"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(users *user.Service, issuer *token.Issuer, mlbClient *mlb.Client, appCache *cache.Cache, cfg *config.Config, db handler.HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Authorization", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// Identity: decodes the bearer token when present, never rejects.
	// Rejection belongs to the per-route guards.
	r.Use(auth.Middleware(issuer))

	// --- Handler dependencies ---
	h := handler.New(users, issuer, mlbClient, appCache, cfg, db)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	// Current user
	r.Route("/user", func(r chi.Router) {
		r.With(auth.EnsureLoggedIn).Get("/", h.CurrentUser)
		r.With(auth.EnsureCorrectUser).Patch("/{email}", h.UpdateUser)
		r.With(auth.EnsureCorrectUser).Delete("/{email}", h.DeleteUser)
	})

	// Favorites
	r.Route("/favorites", func(r chi.Router) {
		r.Use(auth.EnsureLoggedIn)
		r.Get("/teams", h.ListFavoriteTeams)
		r.Post("/teams/{teamId}", h.AddFavoriteTeam)
		r.Delete("/teams/{teamId}", h.RemoveFavoriteTeam)
		r.Get("/players", h.ListFavoritePlayers)
		r.Post("/players/{playerId}", h.AddFavoritePlayer)
		r.Delete("/players/{playerId}", h.RemoveFavoritePlayer)
	})

	// API v1: MLB Stats API passthrough (cached)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/standings", h.GetStandings)
		r.Get("/teams", h.GetTeams)
		r.Get("/teams/{teamID}/stats", h.GetTeamStats)
		r.Get("/players/{playerID}", h.GetPlayer)
		r.Get("/players/{playerID}/stats", h.GetPlayerStats)
	})

	// Server-rendered frontend
	r.Mount("/web", web.Routes(users, issuer, mlbClient))

	return r
}
