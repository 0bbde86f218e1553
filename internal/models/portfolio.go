package models

import (
	"errors"
	"strings"
	"time"
)

// Portfolio is a named group of holdings owned by one user. Duplicate names
// under the same user are allowed.
type Portfolio struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    int       `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	Holdings  []Holding `json:"stocks" gorm:"foreignKey:PortfolioID"`
}

func (Portfolio) TableName() string { return "portfolios" }

// Validate validates the portfolio data.
func (p *Portfolio) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 100 {
		return errors.New("name must be 100 characters or less")
	}
	return nil
}

// Holding is one position inside a portfolio. At most one row exists per
// (portfolio_id, symbol) pair; a second write for the pair overwrites the
// existing row. The table keeps the original "stocks" name on the wire and
// in the schema.
type Holding struct {
	ID            int     `json:"id" gorm:"primaryKey"`
	PortfolioID   int     `json:"portfolio_id" gorm:"uniqueIndex:idx_stocks_portfolio_symbol;not null"`
	Symbol        string  `json:"symbol" gorm:"uniqueIndex:idx_stocks_portfolio_symbol;size:12;not null"`
	Shares        float64 `json:"shares" gorm:"not null"`
	PurchasePrice float64 `json:"purchase_price" gorm:"not null"`
	PurchaseDate  string  `json:"purchase_date" gorm:"size:10;not null"`
}

func (Holding) TableName() string { return "stocks" }

// Normalize canonicalizes the ticker symbol.
func (h *Holding) Normalize() {
	h.Symbol = strings.ToUpper(strings.TrimSpace(h.Symbol))
}

// Validate validates the holding data. Zero shares is rejected explicitly so
// a present-but-zero value is not mistaken for a missing field.
func (h *Holding) Validate() error {
	if h.Symbol == "" {
		return errors.New("symbol is required")
	}
	if len(h.Symbol) > 12 {
		return errors.New("symbol must be 12 characters or less")
	}
	if h.Shares <= 0 {
		return errors.New("shares must be greater than zero")
	}
	if h.PurchasePrice < 0 {
		return errors.New("purchase_price must be non-negative")
	}
	if h.PurchaseDate == "" {
		return errors.New("purchase_date is required")
	}
	return nil
}
