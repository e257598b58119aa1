package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/service"
	"github.com/cryptoassets/portal/internal/validation"
)

// WatchlistHandler handles watchlist-related HTTP requests
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// WatchlistItemResponse represents a watched symbol in API responses.
type WatchlistItemResponse struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	TargetPrice  *float64  `json:"targetPrice,omitempty"`
	AlertType    *string   `json:"alertType,omitempty"`
	AlertEnabled bool      `json:"alertEnabled"`
	AddedDate    time.Time `json:"addedDate"`
}

func toWatchlistItemResponse(item model.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{
		ID:           item.ID,
		Symbol:       item.Symbol,
		Name:         item.Name,
		TargetPrice:  item.TargetPrice,
		AlertType:    item.AlertType,
		AlertEnabled: item.AlertEnabled,
		AddedDate:    item.AddedDate,
	}
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items := h.watchlistService.Watchlist(userID)

	resp := make([]WatchlistItemResponse, len(items))
	for i, item := range items {
		resp[i] = toWatchlistItemResponse(item)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Add handles POST /api/watchlist.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.AddWatchlistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateAddWatchlistRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	symbol := validation.NormalizeSymbol(req.Symbol)

	item, err := h.watchlistService.AddWatch(r.Context(), userID, symbol, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toWatchlistItemResponse(item))
}

// Remove handles DELETE /api/watchlist/{symbol}.
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	symbol := validation.NormalizeSymbol(chi.URLParam(r, "symbol"))

	if err := h.watchlistService.RemoveWatch(r.Context(), userID, symbol); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// SetAlert handles PUT /api/watchlist/{symbol}/alert.
func (h *WatchlistHandler) SetAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	symbol := validation.NormalizeSymbol(chi.URLParam(r, "symbol"))

	var req request.SetAlertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateSetAlertRequest(req); err != nil {
		respondServiceError(w, err)
		return
	}

	item, err := h.watchlistService.SetAlert(r.Context(), userID, symbol, req.TargetPrice, req.AlertType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWatchlistItemResponse(item))
}
