// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned by lookups that match no account.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store. Email uniqueness is enforced here,
// by the backing store, and not by callers.
type AccountRepository interface {
	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account, assigning ID and timestamps when unset.
	// It returns domainerrors.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateRole changes the role of the account with the given email.
	UpdateRole(ctx context.Context, email string, role entity.Role) (*entity.Account, error)

	// CountByRole returns the number of accounts per role.
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)
}
