package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/db"
	"github.com/tdinh-lab/stock-advisor/internal/models"
)

// portfolioService implements the PortfolioService interface
type portfolioService struct {
	db     *db.DB
	market MarketService
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(database *db.DB, market MarketService) PortfolioService {
	return &portfolioService{db: database, market: market}
}

func (s *portfolioService) CreatePortfolio(ctx context.Context, userID int, name string) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{UserID: userID, Name: name}
	if err := portfolio.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	// The owner must exist; an unchecked user_id would leave orphan rows.
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NotFound("user %d not found", userID)
	}

	if err := s.db.WithContext(ctx).Create(portfolio).Error; err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	portfolio.Holdings = []models.Holding{}
	return portfolio, nil
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, id int) error {
	// Holdings first, then the portfolio, in one transaction. No DB-level
	// cascade constraint exists.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Holding{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Portfolio{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete portfolio %d: %w", id, err)
	}
	return nil
}

func (s *portfolioService) UpsertHolding(ctx context.Context, holding *models.Holding) (*models.Holding, error) {
	holding.Normalize()
	if err := holding.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Portfolio{}).Where("id = ?", holding.PortfolioID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check portfolio: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NotFound("portfolio %d not found", holding.PortfolioID)
	}

	// Single atomic statement; concurrent upserts for the same pair cannot
	// create a duplicate row.
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "portfolio_id"}, {Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"shares", "purchase_price", "purchase_date"}),
	}).Create(holding).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert holding: %w", err)
	}

	// Re-read to report the row's original id after a conflict-update.
	var out models.Holding
	err = s.db.WithContext(ctx).
		Where("portfolio_id = ? AND symbol = ?", holding.PortfolioID, holding.Symbol).
		First(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upserted holding: %w", err)
	}
	return &out, nil
}

func (s *portfolioService) DeleteHolding(ctx context.Context, portfolioID int, symbol string) error {
	h := models.Holding{Symbol: symbol}
	h.Normalize()

	err := s.db.WithContext(ctx).
		Where("portfolio_id = ? AND symbol = ?", portfolioID, h.Symbol).
		Delete(&models.Holding{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}

func (s *portfolioService) PortfolioValue(ctx context.Context, id int) (*models.PortfolioValue, error) {
	var portfolio models.Portfolio
	err := s.db.WithContext(ctx).Preload("Holdings").Where("id = ?", id).First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("portfolio %d not found", id)
		}
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	cost := decimal.Zero
	market := decimal.Zero
	for _, h := range portfolio.Holdings {
		shares := decimal.NewFromFloat(h.Shares)
		cost = cost.Add(shares.Mul(decimal.NewFromFloat(h.PurchasePrice)))

		// Symbols missing from the catalog are carried at purchase price.
		price := h.PurchasePrice
		if q, ok := s.market.Quote(h.Symbol); ok {
			price = q.Price
		}
		market = market.Add(shares.Mul(decimal.NewFromFloat(price)))
	}

	gain := market.Sub(cost)
	gainPercent := decimal.Zero
	if cost.IsPositive() {
		gainPercent = gain.Div(cost).Mul(decimal.NewFromInt(100))
	}

	return &models.PortfolioValue{
		PortfolioID: portfolio.ID,
		CostBasis:   cost.Round(2).InexactFloat64(),
		MarketValue: market.Round(2).InexactFloat64(),
		Gain:        gain.Round(2).InexactFloat64(),
		GainPercent: gainPercent.Round(2).InexactFloat64(),
		AsOf:        time.Now().UTC(),
	}, nil
}
