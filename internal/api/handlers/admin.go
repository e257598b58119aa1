package handlers

import (
	"net/http"

	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/service"
)

// AdminHandler handles internal maintenance endpoints.
type AdminHandler struct {
	marketService *service.MarketService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(marketService *service.MarketService) *AdminHandler {
	return &AdminHandler{
		marketService: marketService,
	}
}

// ReseedMarket handles POST /api/admin/market/seed. Drops and reloads the
// asset catalog and market statistics.
func (h *AdminHandler) ReseedMarket(w http.ResponseWriter, r *http.Request) {
	if err := h.marketService.Reseed(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to reseed market data", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "reseeded"})
}

// RefreshPrices handles POST /api/admin/market/refresh. Triggers an immediate
// price refresh outside the scheduled interval.
func (h *AdminHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	if err := h.marketService.RefreshPrices(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to refresh prices", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
