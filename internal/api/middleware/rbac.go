package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

// RBAC enforces role-based access control on the claims injected by Auth.
// Must run after Auth; a missing or disallowed role surfaces as
// domain.ErrForbidden through the central error handler.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return domain.ErrForbidden
			}
			if _, ok := allowed[claims.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
