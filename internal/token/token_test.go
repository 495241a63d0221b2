package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/token"
)

func TestRoundTrip(t *testing.T) {
	issuer := token.NewIssuer("test-secret")

	signed, err := issuer.Create("u1@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	email, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1@x.com", email)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := token.NewIssuer("secret-a").Create("u1@x.com")
	require.NoError(t, err)

	_, err = token.NewIssuer("secret-b").Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := token.NewIssuer("test-secret")

	for _, bad := range []string{"", "not-a-jwt", "a.b.c", "eyJhbGciOiJub25lIn0..", "Bearer xyz"} {
		_, err := issuer.Verify(bad)
		assert.ErrorIs(t, err, token.ErrInvalid, "token %q", bad)
	}
}

func TestVerifyEmptyEmailClaim(t *testing.T) {
	issuer := token.NewIssuer("test-secret")

	signed, err := issuer.Create("")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalid)
}
