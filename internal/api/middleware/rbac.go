package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// RBAC restricts a route to the given roles. The Auth middleware must run
// first so the role claim is present; an absent or unknown role is simply
// not in the allowed set.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// Writers is the RBAC set for mutating routes. Field crew members get a
// read-only dashboard.
func Writers() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin, domain.RoleOfficeCrew)
}
