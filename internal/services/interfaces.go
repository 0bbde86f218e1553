package services

import (
	"context"

	"github.com/tdinh-lab/stock-advisor/internal/models"
)

// UserService defines the interface for account operations
type UserService interface {
	// Register creates a new account with a hashed password. The returned
	// user never carries the hash and starts with an empty portfolio list.
	Register(ctx context.Context, username, password, name, email string) (*models.User, error)
	// Authenticate verifies credentials and returns the user with the full
	// portfolio tree. Unknown users and wrong passwords fail identically.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// PortfolioService defines the interface for portfolio and holding operations
type PortfolioService interface {
	CreatePortfolio(ctx context.Context, userID int, name string) (*models.Portfolio, error)
	// DeletePortfolio removes the portfolio and all its holdings. Deleting a
	// non-existent id succeeds silently.
	DeletePortfolio(ctx context.Context, id int) error
	// UpsertHolding inserts or overwrites the row for (portfolio_id, symbol),
	// keeping the original row id on update.
	UpsertHolding(ctx context.Context, holding *models.Holding) (*models.Holding, error)
	// DeleteHolding is idempotent on absent rows.
	DeleteHolding(ctx context.Context, portfolioID int, symbol string) error
	// PortfolioValue values the portfolio's holdings against the current
	// quote catalog.
	PortfolioValue(ctx context.Context, id int) (*models.PortfolioValue, error)
}

// MarketService defines the interface for the static market-data catalog
type MarketService interface {
	ListQuotes() []models.Quote
	// Quote looks up a single catalog entry by symbol, case-insensitively.
	Quote(symbol string) (models.Quote, bool)
	// SearchQuotes matches the query as a case-insensitive substring of
	// symbol or name. An empty query yields an empty result.
	SearchQuotes(query string) []models.Quote
	// History generates days+1 synthetic price points in ascending date
	// order ending today.
	History(symbol string, days int) ([]models.PricePoint, error)
	ListStrategies() []models.Strategy
	GetStrategy(id int) (*models.Strategy, error)
}
