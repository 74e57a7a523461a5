// Package auth issues and verifies the HMAC-signed bearer tokens used by the
// API. Tokens carry the username as subject and a single role claim.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/OmarHamdi11/blog-rest-api/errs"
)

// Identity is the authenticated principal resolved from a bearer token.
type Identity struct {
	Username string
	Role     string
}

type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate signs a token for the given principal.
func (p *TokenProvider) Generate(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(p.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and expiry and returns the identity it
// asserts. Any failure (bad signature, wrong algorithm, expired, garbage
// input) is reported as an unauthorized error.
func (p *TokenProvider) Parse(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errs.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errs.NewUnauthorizedError("invalid token claims")
	}

	username, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if username == "" {
		return Identity{}, errs.NewUnauthorizedError("token has no subject")
	}

	return Identity{Username: username, Role: role}, nil
}
