package user

import (
	"context"
	"fmt"
)

// Service implements the account lifecycle and favorites operations over an
// injected Store and Hasher. It holds no state of its own.
type Service struct {
	store  Store
	hasher Hasher
}

// NewService creates a Service.
func NewService(store Store, hasher Hasher) *Service {
	return &Service{store: store, hasher: hasher}
}

// Register creates an account with empty favorite collections. Returns
// ErrDuplicateEmail if the email is taken.
func (s *Service) Register(ctx context.Context, email, password, firstName string) (Public, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return Public{}, fmt.Errorf("hash password: %w", err)
	}

	a := Account{
		Email:             email,
		PasswordDigest:    digest,
		FirstName:         firstName,
		FavoriteTeamIDs:   []int{},
		FavoritePlayerIDs: []int{},
	}
	if err := s.store.Create(ctx, a); err != nil {
		return Public{}, err
	}
	return a.Public(), nil
}

// Authenticate verifies email/password. Unknown email and wrong password are
// indistinguishable to the caller: both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Public, error) {
	a, err := s.store.Get(ctx, email)
	if err != nil {
		return Public{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, a.PasswordDigest) {
		return Public{}, ErrInvalidCredentials
	}
	return a.Public(), nil
}

// Get returns the account detail view.
func (s *Service) Get(ctx context.Context, email string) (Detail, error) {
	a, err := s.store.Get(ctx, email)
	if err != nil {
		return Detail{}, err
	}
	return a.Detail(), nil
}

// Update applies a partial profile update. A new password is re-digested
// before storage; nil fields are untouched.
func (s *Service) Update(ctx context.Context, email string, patch Patch) (Public, error) {
	var firstName, digest string
	if patch.FirstName != nil {
		firstName = *patch.FirstName
	}
	if patch.Password != nil {
		d, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return Public{}, fmt.Errorf("hash password: %w", err)
		}
		digest = d
	}

	a, err := s.store.Update(ctx, email, firstName, digest)
	if err != nil {
		return Public{}, err
	}
	return a.Public(), nil
}

// Remove deletes the account.
func (s *Service) Remove(ctx context.Context, email string) error {
	return s.store.Delete(ctx, email)
}

// Favorites returns the id collection for kind.
func (s *Service) Favorites(ctx context.Context, email string, kind FavoriteKind) ([]int, error) {
	return s.store.Favorites(ctx, email, kind)
}

// AddFavorite adds id to the collection. Adding an id that is already
// present returns ErrAlreadyFavorite; a duplicate add is an error, not a
// silent no-op.
func (s *Service) AddFavorite(ctx context.Context, email string, kind FavoriteKind, id int) ([]int, error) {
	return s.store.AddFavorite(ctx, email, kind, id)
}

// RemoveFavorite removes id from the collection. Removing an id that is not
// present returns the unchanged collection.
func (s *Service) RemoveFavorite(ctx context.Context, email string, kind FavoriteKind, id int) ([]int, error) {
	return s.store.RemoveFavorite(ctx, email, kind, id)
}
