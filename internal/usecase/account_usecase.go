// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login: a fresh bearer token and the account view.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   entity.AccountView
}

// VerifyTokenOutput reports whether a token currently resolves to an account.
type VerifyTokenOutput struct {
	Valid bool
}

// AccountUsecase defines the account lifecycle operations exposed to the delivery layer.
type AccountUsecase interface {
	// Register creates a standard account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks the credentials and issues a new token. Older tokens stay valid.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// VerifyToken never fails; any resolution error yields Valid=false.
	VerifyToken(ctx context.Context, rawToken string) *VerifyTokenOutput

	// GetProfile returns the view of the account the token belongs to.
	GetProfile(ctx context.Context, rawToken string) (*entity.AccountView, error)

	// RequireRole resolves the token and checks that the account holds one of the required roles.
	RequireRole(ctx context.Context, rawToken string, required entity.Roles) (*entity.Account, error)
}
