package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStack wires the real hasher, token service and in-memory store.
type testStack struct {
	repo     repository.AccountRepository
	accounts usecase.AccountUsecase
	sessions usecase.SessionUsecase
}

func newTestStack(t *testing.T, now func() time.Time) *testStack {
	t.Helper()

	repo := memory.NewAccountRepository()
	tokens, err := auth.NewJWTServiceWithClock(testSecret, now)
	require.NoError(t, err)

	logger := newTestLogger()
	sessions := NewSessionService(SessionServiceParams{
		AccountRepo:  repo,
		TokenService: tokens,
		Logger:       logger,
	})

	return &testStack{
		repo:     repo,
		sessions: sessions,
		accounts: NewAccountService(AccountServiceParams{
			AccountRepo:  repo,
			Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			TokenService: tokens,
			Sessions:     sessions,
			Logger:       logger,
		}),
	}
}
