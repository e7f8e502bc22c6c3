package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceWithMocks(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockAccountRepository, *mockService.MockTokenService) {
	t.Helper()

	repo := mockRepo.NewMockAccountRepository(t)
	tokens := mockService.NewMockTokenService(t)

	return NewSessionService(SessionServiceParams{
		AccountRepo:  repo,
		TokenService: tokens,
		Logger:       newTestLogger(),
	}), repo, tokens
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{raw: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{raw: "BEARER   abc.def.ghi  ", want: "abc.def.ghi"},
		{raw: "abc.def.ghi", want: "abc.def.ghi"},
		{raw: "Bearer ", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractBearerToken(tt.raw), "raw %q", tt.raw)
	}
}

func TestSessionService_Resolve_Success(t *testing.T) {
	svc, repo, tokens := newSessionServiceWithMocks(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Role: entity.RoleCreator}

	tokens.EXPECT().Verify("abc.def.ghi").Return(&service.Claims{AccountID: account.ID}, nil)
	repo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := svc.Resolve(ctx, "Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Same(t, account, got)
}

func TestSessionService_Resolve_ErrorKinds(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("missing", func(t *testing.T) {
		svc, _, _ := newSessionServiceWithMocks(t)

		_, err := svc.Resolve(ctx, "Bearer   ")
		assert.True(t, errors.Is(err, domainerrors.ErrMissingCredential))
	})

	t.Run("invalid", func(t *testing.T) {
		svc, _, tokens := newSessionServiceWithMocks(t)
		tokens.EXPECT().Verify("bad").Return(nil, domainerrors.ErrInvalidToken.WrapMessage("bad signature"))

		_, err := svc.Resolve(ctx, "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		svc, _, tokens := newSessionServiceWithMocks(t)
		tokens.EXPECT().Verify("old").Return(nil, domainerrors.ErrExpiredToken.WrapMessage("token expired"))

		_, err := svc.Resolve(ctx, "old")
		assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("unclassified verifier error", func(t *testing.T) {
		svc, _, tokens := newSessionServiceWithMocks(t)
		tokens.EXPECT().Verify("odd").Return(nil, errors.New("unexpected"))

		_, err := svc.Resolve(ctx, "odd")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("account gone", func(t *testing.T) {
		svc, repo, tokens := newSessionServiceWithMocks(t)
		tokens.EXPECT().Verify("tok").Return(&service.Claims{AccountID: accountID}, nil)
		repo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

		_, err := svc.Resolve(ctx, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, tokens := newSessionServiceWithMocks(t)
		tokens.EXPECT().Verify("tok").Return(&service.Claims{AccountID: accountID}, nil)
		repo.EXPECT().FindByID(ctx, accountID).Return(nil, errors.New("connection reset"))

		_, err := svc.Resolve(ctx, "tok")
		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrAccountNotFound))
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}

func TestSessionService_Authorize(t *testing.T) {
	svc, _, _ := newSessionServiceWithMocks(t)

	tests := []struct {
		role     entity.Role
		required entity.Roles
		allowed  bool
	}{
		{role: entity.RoleAdmin, required: entity.DashboardRoles, allowed: true},
		{role: entity.RoleCreator, required: entity.DashboardRoles, allowed: true},
		{role: entity.RoleStandard, required: entity.DashboardRoles, allowed: false},
		{role: entity.RoleAdmin, required: entity.Roles{entity.RoleCreator}, allowed: false},
		{role: entity.RoleStandard, required: entity.AllRoles(), allowed: true},
		{role: entity.RoleAdmin, required: entity.Roles{}, allowed: false},
	}

	for _, tt := range tests {
		err := svc.Authorize(&entity.Account{Role: tt.role}, tt.required)
		if tt.allowed {
			assert.NoError(t, err, "role %s in %v", tt.role, tt.required)
		} else {
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "role %s in %v", tt.role, tt.required)
		}
	}

	assert.True(t, errors.Is(svc.Authorize(nil, entity.DashboardRoles), domainerrors.ErrMissingCredential))
}
