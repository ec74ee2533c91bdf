package ports

import "github.com/cardinal-capital/club-system/internal/core/domain"

// Session is the authenticated caller identity resolved from a request
// token. Produced by the identity layer, only ever read by this core.
type Session struct {
	UserID string
	Role   domain.Role
}
