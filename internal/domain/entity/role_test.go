package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	for _, role := range AllRoles() {
		assert.True(t, role.IsValid(), role.String())
	}
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("creator")
	assert.True(t, ok)
	assert.Equal(t, RoleCreator, role)

	_, ok = ParseRole("Admin")
	assert.False(t, ok)
}

func TestDashboardRoles_FlatMembership(t *testing.T) {
	assert.True(t, DashboardRoles.Contains(RoleAdmin))
	assert.True(t, DashboardRoles.Contains(RoleCreator))
	assert.False(t, DashboardRoles.Contains(RoleStandard))

	// creator does not imply admin
	assert.False(t, Roles{RoleAdmin}.Contains(RoleCreator))
	assert.Equal(t, []string{"admin", "creator"}, DashboardRoles.ToStrings())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}

func TestAccount_JSONOmitsPasswordHash(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleStandard,
	}

	raw, err := json.Marshal(account)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), account.PasswordHash)
	assert.NotContains(t, string(raw), "PasswordHash")
}

func TestAccountView_OmitsPasswordHash(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		Name:         "Shopper",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleStandard,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	raw, err := json.Marshal(account.View())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), account.PasswordHash)
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), `"role":"standard"`)
}
