package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// QuoteCache decorates a QuoteProvider with a short-TTL Redis cache so the
// cron refresh and manual refreshes don't hammer the provider's rate limit.
// Cache failures fall through to the provider; the cache is best effort.
// Key format: quote:<symbol>
type QuoteCache struct {
	client *redis.Client
	next   ports.QuoteProvider
	ttl    time.Duration
}

func NewQuoteCache(client *redis.Client, next ports.QuoteProvider, ttl time.Duration) *QuoteCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &QuoteCache{client: client, next: next, ttl: ttl}
}

func (c *QuoteCache) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	key := "quote:" + symbol

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var q domain.Quote
		if json.Unmarshal(raw, &q) == nil {
			return &q, nil
		}
	}

	q, err := c.next.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(q); err == nil {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return q, nil
}

// SearchSymbol is a passthrough; lookups are interactive and rarely repeated.
func (c *QuoteCache) SearchSymbol(ctx context.Context, query string) (*domain.SymbolSearch, error) {
	return c.next.SearchSymbol(ctx, query)
}
