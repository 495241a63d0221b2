// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/moneyball/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// Migrate applies the embedded schema over a plain connection. It must not
// go through a Pool: statement preparation references the users table, which
// does not exist until the schema has been applied.
func Migrate(ctx context.Context, databaseURL string) error {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers all statements the API layer uses.
// Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Accounts
		"user_get":    "SELECT email, password, first_name, favorite_team_ids, favorite_player_ids FROM users WHERE email = $1",
		"user_insert": "INSERT INTO users (email, password, first_name, favorite_team_ids, favorite_player_ids) VALUES ($1, $2, $3, $4, $5)",
		"user_update": "UPDATE users SET first_name = COALESCE(NULLIF($2, ''), first_name), password = COALESCE(NULLIF($3, ''), password) WHERE email = $1 RETURNING email, password, first_name, favorite_team_ids, favorite_player_ids",
		"user_delete": "DELETE FROM users WHERE email = $1 RETURNING email",

		// Favorites. The two array columns are read under FOR UPDATE inside
		// a transaction so concurrent adds for the same account serialize.
		"fav_teams_get":    "SELECT favorite_team_ids FROM users WHERE email = $1",
		"fav_players_get":  "SELECT favorite_player_ids FROM users WHERE email = $1",
		"fav_teams_lock":   "SELECT favorite_team_ids FROM users WHERE email = $1 FOR UPDATE",
		"fav_players_lock": "SELECT favorite_player_ids FROM users WHERE email = $1 FOR UPDATE",
		"fav_teams_set":    "UPDATE users SET favorite_team_ids = $2 WHERE email = $1",
		"fav_players_set":  "UPDATE users SET favorite_player_ids = $2 WHERE email = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
