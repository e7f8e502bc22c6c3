package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase turns a bearer credential into an account and gates operations by role.
// Nothing is cached between calls; every request resolves its session afresh.
type SessionUsecase interface {
	// Resolve accepts an Authorization header value ("Bearer <token>") or a bare token.
	// It fails with ErrMissingCredential, ErrInvalidToken, ErrExpiredToken or ErrAccountNotFound.
	Resolve(ctx context.Context, rawHeader string) (*entity.Account, error)

	// Authorize returns ErrForbidden unless the account's role is in required.
	Authorize(account *entity.Account, required entity.Roles) error
}
