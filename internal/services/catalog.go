package services

import "github.com/tdinh-lab/stock-advisor/internal/models"

// quoteCatalog is the single source for every market-data endpoint. Treat it
// as read-only; handlers always receive copies.
var quoteCatalog = []models.Quote{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 180.95, Change: 2.30},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 325.14, Change: 4.25},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 2950.12, Change: 15.72},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 3550.50, Change: -12.30},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 950.75, Change: 28.15},
	{Symbol: "META", Name: "Meta Platforms, Inc.", Price: 330.42, Change: -5.18},
	{Symbol: "NFLX", Name: "Netflix, Inc.", Price: 620.83, Change: 8.94},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 780.25, Change: 22.40},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Price: 175.32, Change: 1.15},
	{Symbol: "PG", Name: "Procter & Gamble Co.", Price: 162.80, Change: 0.75},
	{Symbol: "V", Name: "Visa Inc.", Price: 240.35, Change: 3.25},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Price: 155.48, Change: -1.22},
	{Symbol: "UNH", Name: "UnitedHealth Group Inc.", Price: 480.92, Change: 5.20},
	{Symbol: "HD", Name: "The Home Depot, Inc.", Price: 340.65, Change: -2.35},
	{Symbol: "PFE", Name: "Pfizer Inc.", Price: 48.75, Change: 0.65},
}

var strategyCatalog = []models.Strategy{
	{
		ID:                1,
		Name:              "Blue Chip Growth",
		Description:       "Focus on established, industry-leading companies with strong growth potential.",
		RiskLevel:         "Medium",
		ExpectedReturn:    "8-12%",
		RecommendedStocks: []string{"AAPL", "MSFT", "JNJ", "PG", "V"},
	},
	{
		ID:                2,
		Name:              "Tech Innovation",
		Description:       "Invest in cutting-edge technology companies poised for rapid growth.",
		RiskLevel:         "High",
		ExpectedReturn:    "12-20%",
		RecommendedStocks: []string{"TSLA", "NVDA", "GOOGL", "META", "AMZN"},
	},
	{
		ID:                3,
		Name:              "Value Investing",
		Description:       "Target undervalued stocks with strong fundamentals and dividends.",
		RiskLevel:         "Low",
		ExpectedReturn:    "5-8%",
		RecommendedStocks: []string{"JNJ", "PG", "JPM", "HD", "UNH"},
	},
	{
		ID:                4,
		Name:              "Dividend Income",
		Description:       "Focus on companies with consistent dividend payments and growth.",
		RiskLevel:         "Low",
		ExpectedReturn:    "4-6%",
		RecommendedStocks: []string{"PFE", "JNJ", "PG", "JPM", "HD"},
	},
}
