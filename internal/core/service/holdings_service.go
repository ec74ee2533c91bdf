package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/pagination"
	"github.com/cardinal-capital/club-system/internal/core/ports"
	"github.com/cardinal-capital/club-system/internal/pkg/metrics"
)

// HoldingsService implements the portfolio tracker: manually entered
// positions plus price refreshes from the market-data provider.
type HoldingsService struct {
	repo   ports.HoldingRepository
	quotes ports.QuoteProvider
	log    zerolog.Logger
}

func NewHoldingsService(repo ports.HoldingRepository, quotes ports.QuoteProvider, log zerolog.Logger) *HoldingsService {
	return &HoldingsService{repo: repo, quotes: quotes, log: log}
}

// List returns a window of the portfolio, newest purchase first, with an
// optional exact symbol filter and substring search over symbol and notes.
func (s *HoldingsService) List(ctx context.Context, q pagination.Query) (*pagination.Result[domain.Holding], error) {
	holdings, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(q.Search)
	match := func(h domain.Holding) bool {
		if q.Symbol != "" && !strings.EqualFold(h.Symbol, q.Symbol) {
			return false
		}
		if q.Year != "" && h.PurchasedAt.Format("2006") != q.Year {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(h.Symbol), search) &&
			!strings.Contains(strings.ToLower(h.Notes), search) {
			return false
		}
		return true
	}
	less := func(a, b domain.Holding) bool { return a.PurchasedAt.After(b.PurchasedAt) }
	if q.Ascending {
		less = func(a, b domain.Holding) bool { return a.PurchasedAt.Before(b.PurchasedAt) }
	}

	res := pagination.Apply(holdings, q, match, less)
	return &res, nil
}

func (s *HoldingsService) Get(ctx context.Context, id string) (*domain.Holding, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HoldingsService) Create(ctx context.Context, h *domain.Holding) (*domain.Holding, error) {
	h.Symbol = strings.ToUpper(h.Symbol)
	h.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("symbol", created.Symbol).Float64("shares", created.Shares).Msg("holding created")
	return created, nil
}

func (s *HoldingsService) Update(ctx context.Context, id string, h *domain.Holding) (*domain.Holding, error) {
	h.Symbol = strings.ToUpper(h.Symbol)
	return s.repo.Update(ctx, id, h)
}

func (s *HoldingsService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RefreshPrices fetches a current quote for every held symbol and stores the
// price. Symbols are deduplicated so a ticker held in several lots costs one
// provider call. Individual failures are logged and skipped; the refresh
// continues with the remaining symbols.
func (s *HoldingsService) RefreshPrices(ctx context.Context) (int, error) {
	start := time.Now()
	holdings, err := s.repo.All(ctx)
	if err != nil {
		metrics.QuoteRefreshTotal.WithLabelValues("error").Inc()
		return 0, err
	}

	quotes := make(map[string]*domain.Quote, len(holdings))
	updated := 0
	for _, h := range holdings {
		quote, ok := quotes[h.Symbol]
		if !ok {
			quote, err = s.quotes.Quote(ctx, h.Symbol)
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", h.Symbol).Msg("quote fetch failed, skipping")
				metrics.QuoteRefreshTotal.WithLabelValues("symbol_error").Inc()
				quotes[h.Symbol] = nil
				continue
			}
			quotes[h.Symbol] = quote
		}
		if quote == nil {
			continue
		}

		if err := s.repo.UpdatePrice(ctx, h.ID, quote.CurrentPrice, quote.FetchedAt); err != nil {
			s.log.Warn().Err(err).Str("symbol", h.Symbol).Str("id", h.ID).Msg("price update failed")
			continue
		}
		updated++
	}

	metrics.QuoteRefreshTotal.WithLabelValues("ok").Inc()
	metrics.QuoteRefreshDuration.Observe(time.Since(start).Seconds())
	s.log.Info().Int("updated", updated).Int("holdings", len(holdings)).Msg("prices refreshed")
	return updated, nil
}

func (s *HoldingsService) SearchSymbol(ctx context.Context, query string) (*domain.SymbolSearch, error) {
	return s.quotes.SearchSymbol(ctx, query)
}
