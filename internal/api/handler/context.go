package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - user id and company id must be non-empty (presence proves the
//     middleware ran and the token carries a usable identity).
//   - role must be one of the canonical roles; an unknown role would make
//     every downstream permission check meaningless, so reject with 401.
func ctxClaims(c echo.Context) (userID, companyID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	companyID, _ = c.Get("company_id").(string)
	if userID == "" || companyID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	raw, _ := c.Get("role").(string)
	role = domain.Role(raw)
	if !role.Valid() {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return userID, companyID, role, nil
}
