package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/api/middleware"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call. Presence proves the middleware ran;
// a gated route reached without it is a wiring bug surfaced as 401.
func ctxSession(c echo.Context) (ports.Session, error) {
	sess := middleware.Session(c)
	if sess == nil {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return *sess, nil
}
