package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/service"
	"github.com/cryptoassets/portal/internal/validation"
)

// defaultTransactionLimit is used when the history endpoint gets no limit parameter.
const defaultTransactionLimit = 50

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// HoldingResponse represents one ledger entry in API responses.
type HoldingResponse struct {
	ID            string    `json:"id"`
	Symbol        string    `json:"symbol"`
	Quantity      float64   `json:"quantity"`
	AvgBuyPrice   float64   `json:"avgBuyPrice"`
	TotalInvested float64   `json:"totalInvested"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	Notes         string    `json:"notes,omitempty"`
}

func toHoldingResponse(h model.Holding) HoldingResponse {
	return HoldingResponse{
		ID:            h.ID,
		Symbol:        h.Symbol,
		Quantity:      h.Quantity,
		AvgBuyPrice:   h.AvgBuyPrice,
		TotalInvested: h.TotalInvested,
		PurchaseDate:  h.PurchaseDate,
		Notes:         h.Notes,
	}
}

// Holdings handles GET /api/portfolio.
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	holdings := h.portfolioService.Holdings(userID)

	resp := make([]HoldingResponse, len(holdings))
	for i, holding := range holdings {
		resp[i] = toHoldingResponse(holding)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Summary handles GET /api/portfolio/summary.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Summary(userID))
}

// Buy handles POST /api/portfolio/buy.
func (h *PortfolioHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.BuyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateBuyRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	symbol := validation.NormalizeSymbol(req.Symbol)

	holding, err := h.portfolioService.Acquire(r.Context(), userID, symbol, req.Quantity, req.Price, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toHoldingResponse(holding))
}

// Sell handles POST /api/portfolio/sell.
func (h *PortfolioHandler) Sell(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.SellRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateSellRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	symbol := validation.NormalizeSymbol(req.Symbol)

	if err := h.portfolioService.Dispose(r.Context(), userID, symbol, req.Quantity, req.Price); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "sold"})
}

// Transactions handles GET /api/portfolio/transactions. Supports ?limit=.
func (h *PortfolioHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	limit := defaultTransactionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondError(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = parsed
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Transactions(userID, limit))
}
