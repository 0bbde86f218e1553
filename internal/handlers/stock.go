package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/models"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

type StockHandler struct {
	portfolios services.PortfolioService
	market     services.MarketService
}

func NewStockHandler(portfolios services.PortfolioService, market services.MarketService) *StockHandler {
	return &StockHandler{portfolios: portfolios, market: market}
}

// Pointer numerics distinguish a missing field from an explicit zero, which
// gets its own validation message instead of the generic one.
type upsertStockRequest struct {
	PortfolioID   *int     `json:"portfolio_id"`
	Symbol        string   `json:"symbol"`
	Shares        *float64 `json:"shares"`
	PurchasePrice *float64 `json:"purchase_price"`
	PurchaseDate  string   `json:"purchase_date"`
}

// HandleUpsertStock handles POST /api/stocks. A second write for the same
// (portfolio, symbol) pair overwrites the existing row; both paths return 201.
func (h *StockHandler) HandleUpsertStock(w http.ResponseWriter, r *http.Request) {
	var req upsertStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid JSON body"))
		return
	}

	if req.PortfolioID == nil || req.Symbol == "" || req.Shares == nil ||
		req.PurchasePrice == nil || req.PurchaseDate == "" {
		writeError(w, apperrors.Validation("All stock details are required"))
		return
	}

	holding := &models.Holding{
		PortfolioID:   *req.PortfolioID,
		Symbol:        req.Symbol,
		Shares:        *req.Shares,
		PurchasePrice: *req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
	}

	stock, err := h.portfolios.UpsertHolding(r.Context(), holding)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"stock": stock})
}

// HandleDeleteStock handles DELETE /api/stocks/{portfolio_id}/{symbol}
func (h *StockHandler) HandleDeleteStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	portfolioID, err := strconv.Atoi(vars["portfolio_id"])
	if err != nil {
		writeError(w, apperrors.Validation("invalid portfolio id"))
		return
	}

	if err := h.portfolios.DeleteHolding(r.Context(), portfolioID, vars["symbol"]); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Stock deleted successfully"})
}

// HandleListStocks handles GET /api/stocks
func (h *StockHandler) HandleListStocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.market.ListQuotes())
}

// HandleSearchStocks handles GET /api/stocks/search?query=
func (h *StockHandler) HandleSearchStocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.market.SearchQuotes(r.URL.Query().Get("query")))
}

// HandleStockHistory handles GET /api/stocks/history/{symbol}?days=
func (h *StockHandler) HandleStockHistory(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	days := 30
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			writeError(w, apperrors.Validation("invalid days parameter"))
			return
		}
		days = parsed
	}

	history, err := h.market.History(symbol, days)
	if err != nil {
		// An unknown symbol returns a bare empty array with 404, matching
		// the established wire contract for this endpoint.
		var notFound *apperrors.ErrNotFound
		if errors.As(err, &notFound) {
			writeJSON(w, http.StatusNotFound, []models.PricePoint{})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}
