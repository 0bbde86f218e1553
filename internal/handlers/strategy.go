package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

type StrategyHandler struct {
	market services.MarketService
}

func NewStrategyHandler(market services.MarketService) *StrategyHandler {
	return &StrategyHandler{market: market}
}

// HandleListStrategies handles GET /api/strategies
func (h *StrategyHandler) HandleListStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.market.ListStrategies())
}

// HandleGetStrategy handles GET /api/strategies/{id}
func (h *StrategyHandler) HandleGetStrategy(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperrors.Validation("invalid strategy id"))
		return
	}

	strategy, err := h.market.GetStrategy(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, strategy)
}
