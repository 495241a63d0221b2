// Package memory provides an in-memory user.Store used by tests and by
// development setups without a Postgres instance. Semantics mirror the
// postgres store exactly.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/albapepper/moneyball/internal/user"
)

// Store is a mutex-guarded map of accounts keyed by email.
type Store struct {
	mu       sync.Mutex
	accounts map[string]user.Account
}

// New creates an empty Store.
func New() *Store {
	return &Store{accounts: make(map[string]user.Account)}
}

func (s *Store) Create(ctx context.Context, a user.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[a.Email]; exists {
		return user.ErrDuplicateEmail
	}
	s.accounts[a.Email] = clone(a)
	return nil
}

func (s *Store) Get(ctx context.Context, email string) (user.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return user.Account{}, user.ErrNotFound
	}
	return clone(a), nil
}

func (s *Store) Update(ctx context.Context, email, firstName, passwordDigest string) (user.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return user.Account{}, user.ErrNotFound
	}
	if firstName != "" {
		a.FirstName = firstName
	}
	if passwordDigest != "" {
		a.PasswordDigest = passwordDigest
	}
	s.accounts[email] = a
	return clone(a), nil
}

func (s *Store) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[email]; !ok {
		return user.ErrNotFound
	}
	delete(s.accounts, email)
	return nil
}

func (s *Store) Favorites(ctx context.Context, email string, kind user.FavoriteKind) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return slices.Clone(favorites(&a, kind)), nil
}

func (s *Store) AddFavorite(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	ids := favorites(&a, kind)
	if slices.Contains(ids, id) {
		return nil, user.ErrAlreadyFavorite
	}
	ids = append(ids, id)
	setFavorites(&a, kind, ids)
	s.accounts[email] = a
	return slices.Clone(ids), nil
}

func (s *Store) RemoveFavorite(ctx context.Context, email string, kind user.FavoriteKind, id int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	ids := favorites(&a, kind)
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
		setFavorites(&a, kind, ids)
		s.accounts[email] = a
	}
	return slices.Clone(ids), nil
}

func favorites(a *user.Account, kind user.FavoriteKind) []int {
	if kind == user.FavoritePlayers {
		return a.FavoritePlayerIDs
	}
	return a.FavoriteTeamIDs
}

func setFavorites(a *user.Account, kind user.FavoriteKind, ids []int) {
	if kind == user.FavoritePlayers {
		a.FavoritePlayerIDs = ids
		return
	}
	a.FavoriteTeamIDs = ids
}

func clone(a user.Account) user.Account {
	a.FavoriteTeamIDs = slices.Clone(a.FavoriteTeamIDs)
	a.FavoritePlayerIDs = slices.Clone(a.FavoritePlayerIDs)
	return a
}
