package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the bearer token and loads the account it was issued for.
func (srv *sessionService) Resolve(ctx context.Context, rawHeader string) (*entity.Account, error) {
	token := extractBearerToken(rawHeader)
	if token == "" {
		return nil, domainerrors.ErrMissingCredential.WrapMessage("no bearer token")
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrExpiredToken) || errors.Is(err, domainerrors.ErrInvalidToken) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Token refers to a missing account", slog.String("account_id", claims.AccountID.String()))

			return nil, domainerrors.ErrAccountNotFound.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session account")
	}

	return account, nil
}

// Authorize checks flat membership of the account's role in required.
func (srv *sessionService) Authorize(account *entity.Account, required entity.Roles) error {
	if account == nil {
		return domainerrors.ErrMissingCredential.WrapMessage("no authenticated account")
	}

	if !required.Contains(account.Role) {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %q not in %v", account.Role, required.ToStrings())
	}

	return nil
}

// extractBearerToken strips an optional, case-insensitive "Bearer" scheme.
// A header holding only the scheme yields "".
func extractBearerToken(raw string) string {
	raw = strings.TrimSpace(raw)

	scheme, rest, found := strings.Cut(raw, " ")
	if strings.EqualFold(scheme, bearerScheme) {
		if !found {
			return ""
		}

		return strings.TrimSpace(rest)
	}

	return raw
}
