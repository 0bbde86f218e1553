package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tdinh-lab/stock-advisor/internal/services"
)

// NewRouter wires every API route. Paths keep the /api prefix of the
// original service for wire compatibility.
func NewRouter(users services.UserService, portfolios services.PortfolioService, market services.MarketService, log *zap.Logger) *mux.Router {
	authHandler := NewAuthHandler(users)
	portfolioHandler := NewPortfolioHandler(portfolios)
	stockHandler := NewStockHandler(portfolios, market)
	strategyHandler := NewStrategyHandler(market)

	r := mux.NewRouter()
	r.Use(RequestLogger(log))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "stock-advisor",
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", authHandler.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/register", authHandler.HandleRegister).Methods(http.MethodPost)

	api.HandleFunc("/portfolios", portfolioHandler.HandleCreatePortfolio).Methods(http.MethodPost)
	api.HandleFunc("/portfolios/{id}", portfolioHandler.HandleDeletePortfolio).Methods(http.MethodDelete)
	api.HandleFunc("/portfolios/{id}/value", portfolioHandler.HandlePortfolioValue).Methods(http.MethodGet)

	api.HandleFunc("/stocks", stockHandler.HandleListStocks).Methods(http.MethodGet)
	api.HandleFunc("/stocks", stockHandler.HandleUpsertStock).Methods(http.MethodPost)
	api.HandleFunc("/stocks/search", stockHandler.HandleSearchStocks).Methods(http.MethodGet)
	api.HandleFunc("/stocks/history/{symbol}", stockHandler.HandleStockHistory).Methods(http.MethodGet)
	api.HandleFunc("/stocks/{portfolio_id}/{symbol}", stockHandler.HandleDeleteStock).Methods(http.MethodDelete)

	api.HandleFunc("/strategies", strategyHandler.HandleListStrategies).Methods(http.MethodGet)
	api.HandleFunc("/strategies/{id}", strategyHandler.HandleGetStrategy).Methods(http.MethodGet)

	return r
}
