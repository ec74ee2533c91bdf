package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// sessionKey is the context key the resolved session is stored under.
const sessionKey = "session"

// SessionResolver turns an inbound request into a caller session. The guard
// never reaches into ambient state; the resolver is its only identity source.
type SessionResolver interface {
	Resolve(r *http.Request) (*ports.Session, error)
}

// Auth resolves the caller's session and injects it into the request
// context. Requests without a resolvable session fail with 401 before the
// handler runs.
func Auth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := resolver.Resolve(c.Request())
			if err != nil || sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// Session extracts the session injected by Auth. Returns nil when the
// request went through an unauthenticated route.
func Session(c echo.Context) *ports.Session {
	sess, _ := c.Get(sessionKey).(*ports.Session)
	return sess
}
