// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a storefront customer or staff member able to sign in.
type Account struct {
	ID           uuid.UUID // Assigned at creation, never changes.
	Email        string    // Lower-cased login identifier, unique across accounts.
	Name         string    // Display label.
	PasswordHash string    `json:"-"` // bcrypt hash; stays inside the credential store and the hasher.
	Role         Role      // Capability tag, RoleStandard for self-registered accounts.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountView is the client-safe projection of an Account.
// It has no password field, so it cannot leak the hash when serialized.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View returns the client-safe projection of the account.
func (a *Account) View() AccountView {
	return AccountView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NormalizeEmail folds an email address to the form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
