package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tdinh-lab/stock-advisor/internal/models"
)

// Migrate creates the schema idempotently. The unique index on
// (portfolio_id, symbol) is what makes holding upserts atomic; deletion
// cascades are performed in code, not by the database.
func Migrate(database *DB) error {
	if err := database.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Holding{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Seed inserts the demo admin account with its two sample portfolios. It is
// a no-op when the admin user already exists, so running it on every startup
// is safe.
func Seed(database *DB) error {
	var count int64
	if err := database.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Admin User",
		Email:        "admin@example.com",
		Portfolios: []models.Portfolio{
			{
				Name: "Tech Portfolio",
				Holdings: []models.Holding{
					{Symbol: "AAPL", Shares: 10, PurchasePrice: 150, PurchaseDate: "2023-01-05"},
					{Symbol: "MSFT", Shares: 5, PurchasePrice: 280, PurchaseDate: "2023-02-10"},
					{Symbol: "GOOGL", Shares: 2, PurchasePrice: 2700, PurchaseDate: "2023-03-15"},
				},
			},
			{
				Name: "Value Stocks",
				Holdings: []models.Holding{
					{Symbol: "JNJ", Shares: 8, PurchasePrice: 160, PurchaseDate: "2023-01-20"},
					{Symbol: "PG", Shares: 7, PurchasePrice: 140, PurchaseDate: "2023-02-25"},
				},
			},
		},
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&admin).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}
