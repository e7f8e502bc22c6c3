// Package memory provides an in-process account store for local runs and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountRepository keeps accounts in maps guarded by a single mutex.
// The email index gives it the same uniqueness contract as the postgres unique index.
type accountRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Account
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		byID:    make(map[uuid.UUID]*entity.Account),
		byEmail: make(map[string]uuid.UUID),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	account, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(repo.byID[id]), nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	email := entity.NormalizeEmail(account.Email)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byEmail[email]; taken {
		return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
	}

	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}
	if account.Role == "" {
		account.Role = entity.RoleStandard
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = repo.now()
	}
	account.UpdatedAt = account.CreatedAt
	account.Email = email

	repo.byID[account.ID] = cloneAccount(account)
	repo.byEmail[email] = account.ID

	return nil
}

func (repo *accountRepository) UpdateRole(_ context.Context, email string, role entity.Role) (*entity.Account, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	id, ok := repo.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	account := repo.byID[id]
	account.Role = role
	account.UpdatedAt = repo.now()

	return cloneAccount(account), nil
}

func (repo *accountRepository) CountByRole(_ context.Context) (map[entity.Role]int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	counts := make(map[entity.Role]int64)
	for _, account := range repo.byID {
		counts[account.Role]++
	}

	return counts, nil
}

func cloneAccount(account *entity.Account) *entity.Account {
	cloned := *account

	return &cloned
}
