// Package auth provides session tokens, password hashing, and the route
// middleware that gates protected pages.
//
// SESSION MODEL:
// Login issues a signed JWT carrying the user's internal ID ("sub") and role
// (custom "role" claim), stored in an HttpOnly cookie. On each protected
// request the middleware validates the cookie and puts the identity in the
// request context. There is no refresh flow — the token is trusted for its
// whole 72h lifetime, and logout simply clears the cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sakif/faculty-appraisal/internal/model"
)

const (
	issuer        = "faculty-appraisal"
	tokenLifetime = 72 * time.Hour
)

// TokenService handles JWT creation and validation.
//
// It holds the HMAC secret key used to sign and verify tokens. The same
// secret must be used for both operations.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production.
// Example: JWT_SECRET=$(openssl rand -hex 32)
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// claims is the JWT payload. It embeds jwt.RegisteredClaims (Subject holds
// the internal user ID) and adds the account role, so the middleware can
// gate admin routes without a database lookup.
type claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity is what a validated token resolves to.
type Identity struct {
	UserID string
	Role   model.Role
}

// Generate creates and signs a new session token for the given user.
func (s *TokenService) Generate(userID string, role model.Role) (string, error) {
	return s.GenerateWithDuration(userID, role, tokenLifetime)
}

// GenerateWithDuration creates a token with a custom expiry duration.
// Used in tests to exercise expiry without waiting 72 hours.
func (s *TokenService) GenerateWithDuration(userID string, role model.Role, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token string and returns the identity it
// encodes. The jwt library checks the signature, expiry, and issuer;
// jwt.WithValidMethods pins the algorithm to HS256 so a token claiming a
// different algorithm is rejected outright.
func (s *TokenService) Validate(tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("auth: token expired")
		}
		return Identity{}, fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("auth: invalid token claims")
	}

	if c.Subject == "" {
		return Identity{}, fmt.Errorf("auth: token has no subject")
	}
	if !c.Role.Valid() {
		return Identity{}, fmt.Errorf("auth: token has no valid role")
	}

	return Identity{UserID: c.Subject, Role: c.Role}, nil
}
