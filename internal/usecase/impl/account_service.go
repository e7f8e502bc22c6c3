// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingDummyPassword is hashed once and checked against on unknown-email logins,
// so both login failure paths spend a bcrypt comparison.
const timingDummyPassword = "storefront-login-timing-equalizer"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessions     usecase.SessionUsecase
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Sessions     usecase.SessionUsecase
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessions:     params.Sessions,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password, inserts a standard account and issues its first token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and password are required")
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password exceeds the hashable length")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleStandard,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected: email already registered")

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("account_id", account.ID.String()))

	return srv.signIn(account)
}

// Login verifies the credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.equalizeTiming(input.Password)

			return nil, srv.rejectLogin(ctx)
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	ok, err := srv.hasher.Check(input.Password, account.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable",
			slog.String("account_id", account.ID.String()),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "stored hash is malformed")
	}
	if !ok {
		return nil, srv.rejectLogin(ctx)
	}

	srv.log(ctx).Info("Account signed in", slog.String("account_id", account.ID.String()))

	return srv.signIn(account)
}

// VerifyToken resolves the token and reports the outcome as a flag.
func (srv *accountService) VerifyToken(ctx context.Context, rawToken string) *usecase.VerifyTokenOutput {
	if _, err := srv.sessions.Resolve(ctx, rawToken); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			srv.log(ctx).Debug("Token not valid", slog.String("reason", appErr.ErrorCode()))
		}

		return &usecase.VerifyTokenOutput{Valid: false}
	}

	return &usecase.VerifyTokenOutput{Valid: true}
}

// GetProfile returns the view of the token's account.
func (srv *accountService) GetProfile(ctx context.Context, rawToken string) (*entity.AccountView, error) {
	account, err := srv.sessions.Resolve(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	view := account.View()

	return &view, nil
}

// RequireRole resolves the token, then applies the role gate.
func (srv *accountService) RequireRole(ctx context.Context, rawToken string, required entity.Roles) (*entity.Account, error) {
	account, err := srv.sessions.Resolve(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	if err := srv.sessions.Authorize(account, required); err != nil {
		srv.log(ctx).Info("Role gate denied access",
			slog.String("account_id", account.ID.String()),
			slog.String("role", account.Role.String()),
		)

		return nil, err
	}

	return account, nil
}

func (srv *accountService) signIn(account *entity.Account) (*usecase.AuthOutput, error) {
	issued, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Account:   account.View(),
	}, nil
}

// rejectLogin logs one identical line for every credential failure.
func (srv *accountService) rejectLogin(ctx context.Context) error {
	srv.log(ctx).Info("Login rejected")

	return domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
}

func (srv *accountService) equalizeTiming(password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingDummyPassword)
		if err == nil {
			srv.dummyHash = hash
		}
	})
	if srv.dummyHash != "" {
		_, _ = srv.hasher.Check(password, srv.dummyHash)
	}
}
