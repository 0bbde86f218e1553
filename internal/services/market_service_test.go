package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
)

func TestMarketService_ListQuotes(t *testing.T) {
	service := NewMarketService()

	quotes := service.ListQuotes()
	require.Len(t, quotes, 15)
	assert.Equal(t, "AAPL", quotes[0].Symbol)

	// Mutating the returned slice must not touch the catalog.
	quotes[0].Price = 0
	again := service.ListQuotes()
	assert.Equal(t, 180.95, again[0].Price)
}

func TestMarketService_SearchQuotes(t *testing.T) {
	service := NewMarketService()

	assert.Empty(t, service.SearchQuotes(""))

	bySymbol := service.SearchQuotes("aapl")
	require.Len(t, bySymbol, 1)
	assert.Equal(t, "AAPL", bySymbol[0].Symbol)

	byName := service.SearchQuotes("johnson")
	require.Len(t, byName, 1)
	assert.Equal(t, "JNJ", byName[0].Symbol)

	assert.Empty(t, service.SearchQuotes("no such company"))
}

func TestMarketService_History(t *testing.T) {
	service := NewMarketService()

	history, err := service.History("AAPL", 30)
	require.NoError(t, err)
	require.Len(t, history, 31)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, history[len(history)-1].Date)

	for i := 1; i < len(history); i++ {
		assert.Less(t, history[i-1].Date, history[i].Date, "dates must ascend")
	}
	for _, point := range history {
		assert.GreaterOrEqual(t, point.Price, 1.0)
	}
}

func TestMarketService_HistoryZeroDays(t *testing.T) {
	service := NewMarketService()

	history, err := service.History("MSFT", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestMarketService_HistoryUnknownSymbol(t *testing.T) {
	service := NewMarketService()

	_, err := service.History("ZZZZ", 30)
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestMarketService_HistoryNegativeDays(t *testing.T) {
	service := NewMarketService()

	_, err := service.History("AAPL", -1)
	var validation *apperrors.ErrValidation
	require.ErrorAs(t, err, &validation)
}

func TestMarketService_Strategies(t *testing.T) {
	service := NewMarketService()

	strategies := service.ListStrategies()
	require.Len(t, strategies, 4)
	assert.Equal(t, "Blue Chip Growth", strategies[0].Name)

	strategy, err := service.GetStrategy(2)
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovation", strategy.Name)
	assert.Equal(t, "High", strategy.RiskLevel)

	_, err = service.GetStrategy(99)
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Strategy not found", err.Error())
}
