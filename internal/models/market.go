package models

import "time"

// Quote is a catalog entry for one tradable symbol.
type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// PricePoint is one entry of a synthetic price history series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Strategy is a canned investment strategy. Field casing matches the public
// API, which uses camelCase for these three fields only.
type Strategy struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	RiskLevel         string   `json:"riskLevel"`
	ExpectedReturn    string   `json:"expectedReturn"`
	RecommendedStocks []string `json:"recommendedStocks"`
}

// PortfolioValue is a server-side valuation of one portfolio against the
// current quote catalog.
type PortfolioValue struct {
	PortfolioID int       `json:"portfolio_id"`
	CostBasis   float64   `json:"cost_basis"`
	MarketValue float64   `json:"market_value"`
	Gain        float64   `json:"gain"`
	GainPercent float64   `json:"gain_percent"`
	AsOf        time.Time `json:"as_of"`
}
