package ports

import (
	"context"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/pagination"
)

// AuthService implements account registration and sign-in.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// MemberService implements member administration, including the rank-checked
// role change and the leadership transfer workflow.
type MemberService interface {
	List(ctx context.Context, q pagination.Query) (*pagination.Result[domain.User], error)
	// UpdateRole assigns role to the target member. The caller may only act
	// on a target of strictly lower rank and assign a role of strictly lower
	// rank than their own.
	UpdateRole(ctx context.Context, caller Session, targetID string, role domain.Role) error
	// TransferLeadership moves the caller's own leadership role to the
	// target, demoting the caller to holdings_read.
	TransferLeadership(ctx context.Context, caller Session, targetID string, role domain.Role) error
	Deactivate(ctx context.Context, caller Session, targetID string) error
}

// ContentService implements the uniform list/read/mutate contract for one
// content collection.
type ContentService[T any] interface {
	List(ctx context.Context, q pagination.Query) (*pagination.Result[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// HoldingsService implements the portfolio tracker.
type HoldingsService interface {
	List(ctx context.Context, q pagination.Query) (*pagination.Result[domain.Holding], error)
	Get(ctx context.Context, id string) (*domain.Holding, error)
	Create(ctx context.Context, h *domain.Holding) (*domain.Holding, error)
	Update(ctx context.Context, id string, h *domain.Holding) (*domain.Holding, error)
	Delete(ctx context.Context, id string) error
	// RefreshPrices pulls a current quote for every held symbol and stores
	// it. Returns the number of holdings updated; individual symbol failures
	// are logged and skipped.
	RefreshPrices(ctx context.Context) (int, error)
	SearchSymbol(ctx context.Context, query string) (*domain.SymbolSearch, error)
}
