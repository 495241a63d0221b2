// Package user defines the account model and the operations the HTTP layer
// exposes: registration, authentication, profile updates, and the favorite
// team/player collections.
package user

import "errors"

// Sentinel errors returned by the Store and Service. The HTTP layer maps
// these onto status codes.
var (
	ErrNotFound           = errors.New("no such user")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrAlreadyFavorite    = errors.New("already a favorite")
	ErrInvalidCredentials = errors.New("invalid email/password")
)

// FavoriteKind selects one of the two favorite-id collections on an account.
type FavoriteKind string

const (
	FavoriteTeams   FavoriteKind = "teams"
	FavoritePlayers FavoriteKind = "players"
)

// Valid reports whether k names a known collection.
func (k FavoriteKind) Valid() bool {
	return k == FavoriteTeams || k == FavoritePlayers
}

// Account is the persisted user record. PasswordDigest never leaves the
// user/store packages; handlers only ever see Public or Detail views.
type Account struct {
	Email             string
	PasswordDigest    string
	FirstName         string
	FavoriteTeamIDs   []int
	FavoritePlayerIDs []int
}

// Public is the view returned by register/authenticate/update.
type Public struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// Detail is the view returned by Get: profile plus both favorite collections.
type Detail struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	FavoriteTeamIDs   []int  `json:"favoriteTeamIds"`
	FavoritePlayerIDs []int  `json:"favoritePlayerIds"`
}

// Patch is a partial profile update. Nil fields are left unchanged.
type Patch struct {
	FirstName *string
	Password  *string
}

// Public returns the account's public view.
func (a *Account) Public() Public {
	return Public{Email: a.Email, FirstName: a.FirstName}
}

// Detail returns the account's detail view. The favorite slices are copied
// so callers cannot mutate stored state through the view.
func (a *Account) Detail() Detail {
	return Detail{
		Email:             a.Email,
		FirstName:         a.FirstName,
		FavoriteTeamIDs:   copyIDs(a.FavoriteTeamIDs),
		FavoritePlayerIDs: copyIDs(a.FavoritePlayerIDs),
	}
}

func copyIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
