package user

import "context"

// Store is the persistence contract for accounts. Two implementations exist:
// store/postgres (production, pgx-backed) and store/memory (tests and
// DB-less development).
//
// Favorites mutations must be atomic per account: two concurrent AddFavorite
// calls for the same id must not both succeed. The postgres store takes a row
// lock inside a transaction; the memory store serializes on a mutex.
type Store interface {
	// Create persists a new account. Returns ErrDuplicateEmail if an
	// account with the same email already exists.
	Create(ctx context.Context, a Account) error

	// Get returns the account for email, or ErrNotFound.
	Get(ctx context.Context, email string) (Account, error)

	// Update replaces firstName and/or the password digest. Empty strings
	// mean "leave unchanged". Returns ErrNotFound if absent.
	Update(ctx context.Context, email, firstName, passwordDigest string) (Account, error)

	// Delete removes the account and its favorites. Returns ErrNotFound
	// if absent.
	Delete(ctx context.Context, email string) error

	// Favorites returns one of the two id collections, or ErrNotFound.
	Favorites(ctx context.Context, email string, kind FavoriteKind) ([]int, error)

	// AddFavorite appends id to the collection and returns the updated
	// collection. Returns ErrNotFound if the account is absent and
	// ErrAlreadyFavorite if id is already present.
	AddFavorite(ctx context.Context, email string, kind FavoriteKind, id int) ([]int, error)

	// RemoveFavorite removes id from the collection and returns the
	// updated collection. Removing an absent id is not an error.
	RemoveFavorite(ctx context.Context, email string, kind FavoriteKind, id int) ([]int, error)
}
