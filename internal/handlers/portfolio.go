package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

type PortfolioHandler struct {
	portfolios services.PortfolioService
}

func NewPortfolioHandler(portfolios services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

// Pointer fields distinguish "absent" from "present with zero value".
type createPortfolioRequest struct {
	UserID *int   `json:"user_id"`
	Name   string `json:"name"`
}

// HandleCreatePortfolio handles POST /api/portfolios
func (h *PortfolioHandler) HandleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req createPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid JSON body"))
		return
	}

	if req.UserID == nil || req.Name == "" {
		writeError(w, apperrors.Validation("User ID and portfolio name are required"))
		return
	}

	portfolio, err := h.portfolios.CreatePortfolio(r.Context(), *req.UserID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"portfolio": portfolio})
}

// HandleDeletePortfolio handles DELETE /api/portfolios/{id}
func (h *PortfolioHandler) HandleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperrors.Validation("invalid portfolio id"))
		return
	}

	if err := h.portfolios.DeletePortfolio(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio deleted successfully"})
}

// HandlePortfolioValue handles GET /api/portfolios/{id}/value
func (h *PortfolioHandler) HandlePortfolioValue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, apperrors.Validation("invalid portfolio id"))
		return
	}

	value, err := h.portfolios.PortfolioValue(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, value)
}
