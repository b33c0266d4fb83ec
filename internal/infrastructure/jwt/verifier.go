package jwtinfra

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the payload fields of an access token minted by the external
// identity platform.
type Claims struct {
	Role  string `json:"role"` // "teacher" | "student"
	Grade string `json:"grade,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string { return c.Subject }

// Verifier validates HS256 access tokens signed with the secret shared with
// the identity platform. This service never signs tokens itself.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth JWT secret is not configured")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
