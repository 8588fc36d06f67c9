package models

import "github.com/shopspring/decimal"

// DashboardSummary is the server-computed aggregate over a user's holdings.
// The client treats it as opaque: nothing here is recomputed locally.
// Spot prices are pointers because older backends omit them.
type DashboardSummary struct {
	Invested decimal.Decimal  `json:"invested"`
	Current  decimal.Decimal  `json:"current"`
	Net      decimal.Decimal  `json:"net"`
	Price24K *decimal.Decimal `json:"price24K,omitempty"`
	Price22K *decimal.Decimal `json:"price22K,omitempty"`
	Price18K *decimal.Decimal `json:"price18K,omitempty"`
}

// GramPrices holds per-karat prices for one history sample.
type GramPrices struct {
	K24 decimal.Decimal `json:"24k"`
	K22 decimal.Decimal `json:"22k"`
	K18 decimal.Decimal `json:"18k"`
}

// PriceHistoryEntry is one sample of the read-only gold price time series,
// keyed by id for rendering only.
type PriceHistoryEntry struct {
	ID           int64      `json:"id"`
	Date         string     `json:"date"`
	PricePerGram GramPrices `json:"price_per_gram"`
}
