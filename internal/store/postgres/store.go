// Package postgres implements user.Store over pgx. All queries go through
// statements prepared at connection setup (see internal/db).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/moneyball/internal/db"
	"github.com/albapepper/moneyball/internal/user"
)

const uniqueViolation = "23505"

// Store is the pgx-backed account store.
type Store struct {
	pool *db.Pool
}

// New creates a Store over an established pool.
func New(pool *db.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Create(ctx context.Context, a user.Account) error {
	_, err := s.pool.Exec(ctx, "user_insert",
		a.Email, a.PasswordDigest, a.FirstName,
		toInt32s(a.FavoriteTeamIDs), toInt32s(a.FavoritePlayerIDs))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, email string) (user.Account, error) {
	return scanAccount(s.pool.QueryRow(ctx, "user_get", email))
}

func (s *Store) Update(ctx context.Context, email, firstName, passwordDigest string) (user.Account, error) {
	return scanAccount(s.pool.QueryRow(ctx, "user_update", email, firstName, passwordDigest))
}

func (s *Store) Delete(ctx context.Context, email string) error {
	var deleted string
	err := s.pool.QueryRow(ctx, "user_delete", email).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *Store) Favorites(ctx context.Context, email string, kind user.FavoriteKind) ([]int, error) {
	var ids []int32
	err := s.pool.QueryRow(ctx, stmtName(kind, "get"), email).Scan(&ids)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select favorites: %w", err)
	}
	return toInts(ids), nil
}

// AddFavorite appends id inside a transaction holding a row lock, so a
// concurrent duplicate add observes this one's effect and fails.
func (s *Store) AddFavorite(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error) {
	var out []int
	err := s.withAccountLock(ctx, email, kind, func(tx pgx.Tx, ids []int) error {
		if slices.Contains(ids, id) {
			return user.ErrAlreadyFavorite
		}
		ids = append(ids, id)
		if _, err := tx.Exec(ctx, stmtName(kind, "set"), email, toInt32s(ids)); err != nil {
			return fmt.Errorf("update favorites: %w", err)
		}
		out = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveFavorite removes id if present. Removing an absent id returns the
// unchanged collection without touching the row.
func (s *Store) RemoveFavorite(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error) {
	var out []int
	err := s.withAccountLock(ctx, email, kind, func(tx pgx.Tx, ids []int) error {
		if i := slices.Index(ids, id); i >= 0 {
			ids = slices.Delete(ids, i, i+1)
			if _, err := tx.Exec(ctx, stmtName(kind, "set"), email, toInt32s(ids)); err != nil {
				return fmt.Errorf("update favorites: %w", err)
			}
		}
		out = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withAccountLock runs fn inside a transaction with the account row locked,
// passing the current id collection for kind.
func (s *Store) withAccountLock(ctx context.Context, email string, kind user.FavoriteKind, fn func(tx pgx.Tx, ids []int) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var ids []int32
	err = tx.QueryRow(ctx, stmtName(kind, "lock"), email).Scan(&ids)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock account row: %w", err)
	}

	if err := fn(tx, toInts(ids)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanAccount(row pgx.Row) (user.Account, error) {
	var a user.Account
	var teams, players []int32
	err := row.Scan(&a.Email, &a.PasswordDigest, &a.FirstName, &teams, &players)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.Account{}, user.ErrNotFound
	}
	if err != nil {
		return user.Account{}, fmt.Errorf("scan user: %w", err)
	}
	a.FavoriteTeamIDs = toInts(teams)
	a.FavoritePlayerIDs = toInts(players)
	return a, nil
}

func stmtName(kind user.FavoriteKind, op string) string {
	if kind == user.FavoritePlayers {
		return "fav_players_" + op
	}
	return "fav_teams_" + op
}

func toInt32s(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, v := range ids {
		out[i] = int32(v)
	}
	return out
}

func toInts(ids []int32) []int {
	out := make([]int, len(ids))
	for i, v := range ids {
		out[i] = int(v)
	}
	return out
}
