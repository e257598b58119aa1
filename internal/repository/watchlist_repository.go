package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// WatchlistRepository provides data access methods for the watchlist_item table.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// GetWatchlist retrieves a user's full watchlist, most recently added first.
func (r *WatchlistRepository) GetWatchlist(userID string) ([]model.WatchlistItem, error) {
	query := `
          SELECT id, user_id, symbol, name, added_date, alert_enabled, target_price, alert_type
          FROM watchlist_item
          WHERE user_id = ?
          ORDER BY added_date DESC, id DESC
      `

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist_item table: %w", err)
	}
	defer rows.Close()

	items := []model.WatchlistItem{}

	for rows.Next() {
		var item model.WatchlistItem

		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Symbol,
			&item.Name,
			&item.AddedDate,
			&item.AlertEnabled,
			&item.TargetPrice,
			&item.AlertType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist_item table results: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist_item table: %w", err)
	}

	return items, nil
}

// GetBySymbol retrieves one watchlist entry by user and symbol.
func (r *WatchlistRepository) GetBySymbol(userID, symbol string) (model.WatchlistItem, error) {
	query := `
          SELECT id, user_id, symbol, name, added_date, alert_enabled, target_price, alert_type
          FROM watchlist_item
          WHERE user_id = ? AND symbol = ?
      `
	var item model.WatchlistItem

	err := r.db.QueryRow(query, userID, symbol).Scan(
		&item.ID,
		&item.UserID,
		&item.Symbol,
		&item.Name,
		&item.AddedDate,
		&item.AlertEnabled,
		&item.TargetPrice,
		&item.AlertType,
	)
	if err == sql.ErrNoRows {
		return model.WatchlistItem{}, apperrors.ErrWatchlistItemNotFound
	}
	if err != nil {
		return model.WatchlistItem{}, fmt.Errorf("failed to query watchlist item: %w", err)
	}

	return item, nil
}

// InsertItem creates a new watchlist entry.
func (r *WatchlistRepository) InsertItem(ctx context.Context, item *model.WatchlistItem) error {
	query := `
          INSERT INTO watchlist_item (id, user_id, symbol, name, added_date, alert_enabled, target_price, alert_type)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.UserID,
		item.Symbol,
		item.Name,
		item.AddedDate,
		item.AlertEnabled,
		item.TargetPrice,
		item.AlertType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert watchlist item: %w", err)
	}

	return nil
}

// UpdateAlert overwrites the alert configuration of an existing entry.
func (r *WatchlistRepository) UpdateAlert(ctx context.Context, item *model.WatchlistItem) error {
	query := `
          UPDATE watchlist_item
          SET alert_enabled = ?, target_price = ?, alert_type = ?
          WHERE id = ?
      `

	res, err := r.db.ExecContext(ctx, query,
		item.AlertEnabled,
		item.TargetPrice,
		item.AlertType,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update watchlist alert: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check watchlist update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWatchlistItemNotFound
	}

	return nil
}

// DeleteItem removes a watchlist entry by ID.
func (r *WatchlistRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist_item WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check watchlist delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWatchlistItemNotFound
	}

	return nil
}
