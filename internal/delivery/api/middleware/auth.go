// Package middleware contains echo middleware specific to the API server.
package middleware

import (
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes on the bearer token and the caller's role.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// RequireRole authenticates the request and admits only accounts whose role is in required.
// The resolved account is stored in the echo.Context for handlers.
func (m *AuthMiddleware) RequireRole(required entity.Roles) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := m.accountUC.RequireRole(
				c.Request().Context(),
				c.Request().Header.Get(echo.HeaderAuthorization),
				required,
			)
			if err != nil {
				return response.HandleAppError(c, err)
			}

			deliverycontext.SetAccount(c, account)

			return next(c)
		}
	}
}
