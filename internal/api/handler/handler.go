// Package handler provides HTTP handlers for all API endpoints. Handlers
// bind the user service, token issuer, and MLB client to routes; request
// bodies are validated before touching the service layer.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/albapepper/moneyball/internal/api/respond"
	"github.com/albapepper/moneyball/internal/cache"
	"github.com/albapepper/moneyball/internal/config"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/token"
	"github.com/albapepper/moneyball/internal/user"
)

// HealthChecker reports persistence-layer reachability. Satisfied by
// *db.Pool; nil when running storeless (memory store).
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	users    *user.Service
	issuer   *token.Issuer
	mlb      *mlb.Client
	cache    *cache.Cache
	cfg      *config.Config
	db       HealthChecker
	validate *validator.Validate
}

// New creates a Handler with shared dependencies.
func New(users *user.Service, issuer *token.Issuer, mlbClient *mlb.Client, c *cache.Cache, cfg *config.Config, db HealthChecker) *Handler {
	return &Handler{
		users:    users,
		issuer:   issuer,
		mlb:      mlbClient,
		cache:    c,
		cfg:      cfg,
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Moneyball API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil || h.db.HealthCheck(r.Context()) != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
