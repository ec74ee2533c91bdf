package domain

import "time"

// Holding is a manually entered position in the club portfolio.
type Holding struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Symbol         string    `json:"symbol" bson:"symbol"`
	Shares         float64   `json:"shares" bson:"shares"`
	CostBasis      float64   `json:"cost_basis" bson:"cost_basis"`
	CurrentPrice   float64   `json:"current_price" bson:"current_price"`
	PriceUpdatedAt time.Time `json:"price_updated_at" bson:"price_updated_at"`
	PurchasedAt    time.Time `json:"purchased_at" bson:"purchased_at"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// Quote is a point-in-time price snapshot from the market-data provider.
type Quote struct {
	Symbol        string    `json:"symbol"`
	CurrentPrice  float64   `json:"current_price"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Open          float64   `json:"open"`
	PreviousClose float64   `json:"previous_close"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// SymbolMatch is one hit from a ticker symbol lookup.
type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// SymbolSearch is the full result of a ticker symbol lookup.
type SymbolSearch struct {
	Count   int           `json:"count"`
	Results []SymbolMatch `json:"results"`
}
