// Package token issues and verifies the stateless bearer tokens that
// identify an account. Tokens are HS256 JWTs carrying the account email;
// nothing is persisted server-side.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for tokens that fail to parse or verify.
var ErrInvalid = errors.New("invalid token")

// Claims is the JWT payload: just the account email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer with the given secret key.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Create returns a signed token for email.
func (i *Issuer) Create(email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: email})
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the embedded email. Malformed,
// unsigned, or wrongly-signed tokens all return ErrInvalid.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid || claims.Email == "" {
		return "", ErrInvalid
	}
	return claims.Email, nil
}
