package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/store/memory"
	"github.com/albapepper/moneyball/internal/user"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	err := s.Create(context.Background(), user.Account{
		Email:             "u1@x.com",
		PasswordDigest:    "digest",
		FirstName:         "U1",
		FavoriteTeamIDs:   []int{},
		FavoritePlayerIDs: []int{},
	})
	require.NoError(t, err)
	return s
}

func TestCreateDuplicate(t *testing.T) {
	s := seeded(t)
	err := s.Create(context.Background(), user.Account{Email: "u1@x.com"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestGetUnknown(t *testing.T) {
	s := seeded(t)
	_, err := s.Get(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestAddFavoriteSetSemantics(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	ids, err := s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)

	// Strict add: duplicates are an error, not a no-op.
	_, err = s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	assert.ErrorIs(t, err, user.ErrAlreadyFavorite)

	ids, err = s.Favorites(ctx, "u1@x.com", user.FavoriteTeams)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)
}

func TestRemoveFavoriteLenient(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, err := s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)

	ids, err := s.RemoveFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Removing an absent id is a no-op, not an error.
	ids, err = s.RemoveFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoriteKindsAreIndependent(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, err := s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 7)
	require.NoError(t, err)

	// The same id can be a favorite player and a favorite team.
	ids, err := s.AddFavorite(ctx, "u1@x.com", user.FavoritePlayers, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids)

	_, err = s.RemoveFavorite(ctx, "u1@x.com", user.FavoritePlayers, 7)
	require.NoError(t, err)

	ids, err = s.Favorites(ctx, "u1@x.com", user.FavoriteTeams)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids)
}

func TestFavoritesUnknownAccount(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, err := s.Favorites(ctx, "nobody@x.com", user.FavoriteTeams)
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = s.AddFavorite(ctx, "nobody@x.com", user.FavoriteTeams, 1)
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = s.RemoveFavorite(ctx, "nobody@x.com", user.FavoriteTeams, 1)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	ids, err := s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	ids[0] = 999

	stored, err := s.Favorites(ctx, "u1@x.com", user.FavoriteTeams)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, stored)
}

func TestUpdateLeavesUnsetFields(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a, err := s.Update(ctx, "u1@x.com", "New Name", "")
	require.NoError(t, err)
	assert.Equal(t, "New Name", a.FirstName)
	assert.Equal(t, "digest", a.PasswordDigest)

	a, err = s.Update(ctx, "u1@x.com", "", "digest2")
	require.NoError(t, err)
	assert.Equal(t, "New Name", a.FirstName)
	assert.Equal(t, "digest2", a.PasswordDigest)
}

func TestDelete(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "u1@x.com"))
	assert.ErrorIs(t, s.Delete(ctx, "u1@x.com"), user.ErrNotFound)
}

func TestConcurrentAddsSingleWinner(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	const workers = 16
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := s.AddFavorite(ctx, "u1@x.com", user.FavoriteTeams, 42)
			errs <- err
		}()
	}

	var dup, ok int
	for i := 0; i < workers; i++ {
		if err := <-errs; err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, user.ErrAlreadyFavorite)
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)

	ids, err := s.Favorites(ctx, "u1@x.com", user.FavoriteTeams)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, ids)
}
