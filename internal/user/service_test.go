package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/store/memory"
	"github.com/albapepper/moneyball/internal/user"
)

// Low cost keeps bcrypt fast in tests.
func newService() *user.Service {
	return user.NewService(memory.New(), user.NewBcryptHasher(4))
}

func TestRegister(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pub, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", pub.Email)
	assert.Equal(t, "A", pub.FirstName)

	detail, err := svc.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, detail.FavoriteTeamIDs)
	assert.Empty(t, detail.FavoritePlayerIDs)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "other-pw", "B")
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestReRegisterAfterDelete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "a@x.com"))

	_, err = svc.Register(ctx, "a@x.com", "pw123456", "A")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)

	pub, err := svc.Authenticate(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", pub.Email)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@x.com", "pw123456")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUpdatePartial(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)

	// Name-only patch must leave the password untouched.
	name := "Anna"
	pub, err := svc.Update(ctx, "a@x.com", user.Patch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Anna", pub.FirstName)

	_, err = svc.Authenticate(ctx, "a@x.com", "pw123456")
	assert.NoError(t, err)

	// Password patch re-digests: old password stops working.
	newPW := "fresh-pw-9"
	_, err = svc.Update(ctx, "a@x.com", user.Patch{Password: &newPW})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@x.com", "pw123456")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "a@x.com", "fresh-pw-9")
	assert.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newService()
	name := "X"
	_, err := svc.Update(context.Background(), "nobody@x.com", user.Patch{FirstName: &name})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestRemoveNotFound(t *testing.T) {
	svc := newService()
	err := svc.Remove(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestBcryptHasher(t *testing.T) {
	hasher := user.NewBcryptHasher(4)

	digest, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", digest)
	assert.True(t, hasher.Verify("pw123456", digest))
	assert.False(t, hasher.Verify("pw1234567", digest))

	// Out-of-range cost falls back to the library default.
	assert.NotPanics(t, func() { user.NewBcryptHasher(99) })
}

func TestFavoritesThroughService(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)

	ids, err := svc.AddFavorite(ctx, "a@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)

	_, err = svc.AddFavorite(ctx, "a@x.com", user.FavoriteTeams, 5)
	assert.ErrorIs(t, err, user.ErrAlreadyFavorite)

	ids, err = svc.RemoveFavorite(ctx, "a@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Lenient remove: repeating is not an error.
	ids, err = svc.RemoveFavorite(ctx, "a@x.com", user.FavoriteTeams, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
