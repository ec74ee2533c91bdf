// Package marketdata implements the external stock-quote provider client.
// The wire format follows the Finnhub REST API: /quote returns flat OHLC
// fields, /search returns {count, result[]}.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cardinal-capital/club-system/internal/core/domain"
)

var ErrSymbolNotFound = fmt.Errorf("symbol not found")

// Client talks to the market-data REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type quoteResponse struct {
	Current       float64 `json:"c"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

type searchResponse struct {
	Count  int `json:"count"`
	Result []struct {
		Symbol      string `json:"symbol"`
		Description string `json:"description"`
	} `json:"result"`
}

// Quote fetches the current price snapshot for symbol. The provider answers
// all-zero fields for unknown tickers; that is reported as ErrSymbolNotFound.
func (c *Client) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	var resp quoteResponse
	if err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return nil, err
	}
	if resp.Current == 0 && resp.PreviousClose == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	return &domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  resp.Current,
		High:          resp.High,
		Low:           resp.Low,
		Open:          resp.Open,
		PreviousClose: resp.PreviousClose,
		FetchedAt:     time.Now().UTC(),
	}, nil
}

// SearchSymbol looks up tickers matching query.
func (c *Client) SearchSymbol(ctx context.Context, query string) (*domain.SymbolSearch, error) {
	var resp searchResponse
	if err := c.get(ctx, "/search", url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}

	result := &domain.SymbolSearch{Count: resp.Count}
	for _, m := range resp.Result {
		result.Results = append(result.Results, domain.SymbolMatch{
			Symbol:      m.Symbol,
			Description: m.Description,
		})
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("market data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market data: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("market data: decode: %w", err)
	}
	return nil
}
