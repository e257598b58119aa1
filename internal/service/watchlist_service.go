package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/repository"
)

// WatchlistService manages the symbols a user tracks and their alert
// configuration. Alerts are stored but never evaluated; there is no
// alert-firing engine in this system.
type WatchlistService struct {
	watchlistRepo *repository.WatchlistRepository
}

// NewWatchlistService creates a new WatchlistService with the provided repository.
func NewWatchlistService(watchlistRepo *repository.WatchlistRepository) *WatchlistService {
	return &WatchlistService{watchlistRepo: watchlistRepo}
}

// AddWatch puts a symbol on the user's watchlist with alerts disabled.
func (s *WatchlistService) AddWatch(ctx context.Context, userID, symbol, name string) (model.WatchlistItem, error) {
	_, err := s.watchlistRepo.GetBySymbol(userID, symbol)
	if err == nil {
		return model.WatchlistItem{}, apperrors.ErrDuplicateWatchlistEntry
	}
	if err != apperrors.ErrWatchlistItemNotFound {
		return model.WatchlistItem{}, fmt.Errorf("failed to check watchlist: %w", err)
	}

	item := model.WatchlistItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		Symbol:       symbol,
		Name:         name,
		AddedDate:    time.Now().UTC(),
		AlertEnabled: false,
	}

	if err := s.watchlistRepo.InsertItem(ctx, &item); err != nil {
		return model.WatchlistItem{}, err
	}

	return item, nil
}

// RemoveWatch takes a symbol off the user's watchlist.
func (s *WatchlistService) RemoveWatch(ctx context.Context, userID, symbol string) error {
	item, err := s.watchlistRepo.GetBySymbol(userID, symbol)
	if err != nil {
		return err
	}

	return s.watchlistRepo.DeleteItem(ctx, item.ID)
}

// SetAlert overwrites the alert configuration for a watched symbol and enables
// it. The target price must be positive and the alert type one of above, below
// or both.
func (s *WatchlistService) SetAlert(ctx context.Context, userID, symbol string, targetPrice float64, alertType string) (model.WatchlistItem, error) {
	if targetPrice <= 0 {
		return model.WatchlistItem{}, apperrors.ErrInvalidTargetPrice
	}
	if alertType != model.AlertAbove && alertType != model.AlertBelow && alertType != model.AlertBoth {
		return model.WatchlistItem{}, apperrors.ErrInvalidAlertType
	}

	item, err := s.watchlistRepo.GetBySymbol(userID, symbol)
	if err != nil {
		return model.WatchlistItem{}, err
	}

	item.AlertEnabled = true
	item.TargetPrice = &targetPrice
	item.AlertType = &alertType

	if err := s.watchlistRepo.UpdateAlert(ctx, &item); err != nil {
		return model.WatchlistItem{}, err
	}

	return item, nil
}

// Watchlist returns the user's watchlist, most recently added first.
// Store failures degrade to an empty result set.
func (s *WatchlistService) Watchlist(userID string) []model.WatchlistItem {
	items, err := s.watchlistRepo.GetWatchlist(userID)
	if err != nil {
		log.Printf("failed to load watchlist for user %s: %v", userID, err)
		return []model.WatchlistItem{}
	}
	return items
}
