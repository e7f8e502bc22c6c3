// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// A token is a pure function of subject, expiry and the secret; nothing is stored server-side.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It refuses to build a service without a configured secret; there is no fallback key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg.SecretKey.Access, time.Now)
}

// NewJWTServiceWithClock builds a token service that reads time from now.
func NewJWTServiceWithClock(secret string, now func() time.Time) (service.TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if len(secret) < config.MinSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d bytes", config.MinSecretLength)
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    service.TokenLifetime,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithStrictDecoding(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Issue creates a signed token for accountID that expires ttl after issuance.
func (s *jwtService) Issue(accountID uuid.UUID) (*service.IssuedToken, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0),
	}, nil
}

// Verify checks the token signature, then its expiry, and returns the embedded claims.
// The jwt parser rejects a bad signature before it looks at any claim, so a tampered
// token is always reported as invalid, never as expired.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, "token expired")
		}

		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "failed to verify token: %v", err)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject is not an account id")
	}
	claims.AccountID = accountID

	return claims, nil
}
