package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/pkg/metrics"
)

// Permit enforces the permission table for one permission key. It must be
// mounted after Auth: a missing session fails with 401, a role outside the
// key's allowed set with 403, and the wrapped handler never runs on deny.
func Permit(table domain.PermissionTable, perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := Session(c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !table.Allows(perm, sess.Role) {
				metrics.AuthDeniedTotal.WithLabelValues(string(perm)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
