package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DashboardUsecase serves the account figures shown on the admin dashboard.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
