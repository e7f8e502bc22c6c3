package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(accountRepo repository.AccountRepository, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetStats counts accounts per role. Every known role is present, zero when unused.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	counts, err := srv.accountRepo.CountByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	stats := &entity.DashboardStats{
		AccountsByRole: make(map[entity.Role]int64, len(counts)),
	}
	for _, role := range entity.AllRoles() {
		stats.AccountsByRole[role] = 0
	}
	for role, n := range counts {
		stats.AccountsByRole[role] = n
		stats.TotalAccounts += n
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard stats computed",
		slog.Int64("total_accounts", stats.TotalAccounts),
	)

	return stats, nil
}
