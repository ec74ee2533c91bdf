package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardinal-capital/club-system/internal/core/pagination"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// ContentConfig describes how one content collection is filtered and
// ordered. Date is required; Text, Symbol and OrderBy are optional.
type ContentConfig[T any] struct {
	// Collection names the backing collection in log lines.
	Collection string
	// Date extracts the field the year/month filters and the default sort
	// apply to.
	Date func(T) time.Time
	// Text extracts the fields the substring search runs over.
	Text func(T) []string
	// Symbol extracts the ticker symbol for exact-match filtering.
	Symbol func(T) string
	// OrderBy maps orderBy values to ascending comparators. "date" is
	// always available.
	OrderBy map[string]func(a, b T) bool
}

type contentService[T any] struct {
	repo ports.ContentRepository[T]
	cfg  ContentConfig[T]
	log  zerolog.Logger
}

// NewContentService builds the uniform list/read/mutate service for one
// content collection.
func NewContentService[T any](repo ports.ContentRepository[T], cfg ContentConfig[T], log zerolog.Logger) ports.ContentService[T] {
	return &contentService[T]{repo: repo, cfg: cfg, log: log}
}

// List applies the query's filters, sorts (date descending unless overridden)
// and slices the requested window. The full collection is re-filtered on
// every request; no cursor state is kept between calls.
func (s *contentService[T]) List(ctx context.Context, q pagination.Query) (*pagination.Result[T], error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	res := pagination.Apply(items, q, s.matcher(q), s.comparator(q))
	return &res, nil
}

func (s *contentService[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contentService[T]) Create(ctx context.Context, item *T) (*T, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("collection", s.cfg.Collection).Msg("content created")
	return created, nil
}

func (s *contentService[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	updated, err := s.repo.Update(ctx, id, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("collection", s.cfg.Collection).Str("id", id).Msg("content updated")
	return updated, nil
}

func (s *contentService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("collection", s.cfg.Collection).Str("id", id).Msg("content deleted")
	return nil
}

// matcher builds the filter predicate for one query: exact year and month
// against the date field, case-insensitive substring search over the text
// fields, exact symbol match.
func (s *contentService[T]) matcher(q pagination.Query) func(T) bool {
	search := strings.ToLower(q.Search)
	return func(it T) bool {
		if q.Year != "" || q.Month != 0 {
			d := s.cfg.Date(it)
			if q.Year != "" && d.Format("2006") != q.Year {
				return false
			}
			if q.Month != 0 && int(d.Month()) != q.Month {
				return false
			}
		}
		if search != "" {
			if s.cfg.Text == nil {
				return false
			}
			found := false
			for _, f := range s.cfg.Text(it) {
				if strings.Contains(strings.ToLower(f), search) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if q.Symbol != "" {
			if s.cfg.Symbol == nil || !strings.EqualFold(s.cfg.Symbol(it), q.Symbol) {
				return false
			}
		}
		return true
	}
}

// comparator resolves the sort order: a configured orderBy field when
// requested and known, otherwise the date field. Default direction is
// descending.
func (s *contentService[T]) comparator(q pagination.Query) func(a, b T) bool {
	asc := func(a, b T) bool { return s.cfg.Date(a).Before(s.cfg.Date(b)) }
	if q.OrderBy != "" && q.OrderBy != "date" {
		if cmp, ok := s.cfg.OrderBy[q.OrderBy]; ok {
			asc = cmp
		}
	}
	if q.Ascending {
		return asc
	}
	return func(a, b T) bool { return asc(b, a) }
}
