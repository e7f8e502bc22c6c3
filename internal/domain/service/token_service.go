package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime is how long an issued bearer token stays valid.
const TokenLifetime = 24 * time.Hour

// Claims defines the claims carried by a bearer token.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed bearer token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for the account, expiring TokenLifetime after issuance.
	Issue(accountID uuid.UUID) (*IssuedToken, error)

	// Verify checks the signature first and the expiry second.
	// It returns domainerrors.ErrInvalidToken or domainerrors.ErrExpiredToken on failure.
	Verify(tokenString string) (*Claims, error)
}
