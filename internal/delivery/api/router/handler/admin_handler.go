package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetStats returns the account statistics. The route is gated by role.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.dashboardUC.GetStats(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if account, ok := deliverycontext.GetAccount(c); ok {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Dashboard stats served",
			slog.String("account_id", account.ID.String()),
		)
	}

	return response.Success(c, http.StatusOK, stats)
}
