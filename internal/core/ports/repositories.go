package ports

import (
	"context"
	"io"
	"time"

	"github.com/cardinal-capital/club-system/internal/core/domain"
)

// UserRepository defines persistence operations for member accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// All returns every member account. Listing is windowed in memory by the
	// service layer; the club roster is small by construction.
	All(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	SetActive(ctx context.Context, id string, active bool) error
}

// ContentRepository defines persistence operations shared by all five
// content collections (newsletters, notes, pitches, gallery images, events).
type ContentRepository[T any] interface {
	// All returns the full collection; each list request recomputes
	// filter, sort and window from scratch — no server-side cursors.
	All(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// HoldingRepository defines persistence operations for portfolio holdings.
type HoldingRepository interface {
	ContentRepository[domain.Holding]
	UpdatePrice(ctx context.Context, id string, price float64, at time.Time) error
}

// FileStore abstracts binary storage for uploaded files (gallery images,
// newsletter PDFs). Open must fail before any byte is produced so callers
// can still map a missing blob to an error response.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, id string) (io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}

// QuoteProvider abstracts the external market-data API.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
	SearchSymbol(ctx context.Context, query string) (*domain.SymbolSearch, error)
}
