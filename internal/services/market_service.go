package services

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/models"
)

// marketService serves the static quote and strategy catalogs and generates
// synthetic price histories. Histories are regenerated on every call and
// make no reproducibility promise.
type marketService struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMarketService creates a new market data service
func NewMarketService() MarketService {
	return &marketService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

func (s *marketService) ListQuotes() []models.Quote {
	out := make([]models.Quote, len(quoteCatalog))
	copy(out, quoteCatalog)
	return out
}

func (s *marketService) Quote(symbol string) (models.Quote, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, q := range quoteCatalog {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return models.Quote{}, false
}

func (s *marketService) SearchQuotes(query string) []models.Quote {
	matches := []models.Quote{}
	if query == "" {
		return matches
	}

	q := strings.ToLower(query)
	for _, quote := range quoteCatalog {
		if strings.Contains(strings.ToLower(quote.Symbol), q) ||
			strings.Contains(strings.ToLower(quote.Name), q) {
			matches = append(matches, quote)
		}
	}
	return matches
}

func (s *marketService) History(symbol string, days int) ([]models.PricePoint, error) {
	if days < 0 {
		return nil, apperrors.Validation("days must be non-negative")
	}

	quote, ok := s.Quote(symbol)
	if !ok {
		return nil, apperrors.NotFound("symbol %s not found", symbol)
	}

	today := s.now()
	history := make([]models.PricePoint, 0, days+1)
	price := quote.Price

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		// Random step within ±3%, floored at 1.
		change := price * (s.rng.Float64()*0.06 - 0.03)
		price = math.Max(price+change, 1)
		history = append(history, models.PricePoint{
			Date:  date.Format("2006-01-02"),
			Price: math.Round(price*100) / 100,
		})
	}
	return history, nil
}

func (s *marketService) ListStrategies() []models.Strategy {
	out := make([]models.Strategy, len(strategyCatalog))
	copy(out, strategyCatalog)
	return out
}

func (s *marketService) GetStrategy(id int) (*models.Strategy, error) {
	for _, strategy := range strategyCatalog {
		if strategy.ID == id {
			st := strategy
			return &st, nil
		}
	}
	return nil, apperrors.NotFound("Strategy not found")
}
