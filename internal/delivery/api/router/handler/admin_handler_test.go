package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_GetStats(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{
		DashboardUC: dashboardUC,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	c, rec := newTestContext(http.MethodGet, "/api/admin/stats", "", "")
	deliverycontext.SetAccount(c, &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin})

	dashboardUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{
		TotalAccounts:  2,
		AccountsByRole: map[entity.Role]int64{entity.RoleAdmin: 1, entity.RoleStandard: 1},
	}, nil)

	require.NoError(t, h.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalAccounts":2`)
}

func TestAdminHandler_GetStats_StoreFailure(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{
		DashboardUC: dashboardUC,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	c, _ := newTestContext(http.MethodGet, "/api/admin/stats", "", "")

	dashboardUC.EXPECT().GetStats(mock.Anything).Return(nil, errors.New("connection refused"))

	assert.Error(t, h.GetStats(c))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
