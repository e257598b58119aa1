package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// All queries are scoped to a single user: the application never reads or
// writes a holding outside the owning account.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings for a user, largest position first by symbol order.
// Returns an empty slice if the user holds nothing.
func (r *HoldingRepository) GetHoldings(userID string) ([]model.Holding, error) {
	query := `
          SELECT id, user_id, symbol, quantity, avg_buy_price, total_invested, purchase_date, COALESCE(notes, '')
          FROM holding
          WHERE user_id = ?
          ORDER BY symbol
      `

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding

		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Symbol,
			&h.Quantity,
			&h.AvgBuyPrice,
			&h.TotalInvested,
			&h.PurchaseDate,
			&h.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingBySymbol retrieves a user's holding for one symbol.
func (r *HoldingRepository) GetHoldingBySymbol(userID, symbol string) (model.Holding, error) {
	query := `
          SELECT id, user_id, symbol, quantity, avg_buy_price, total_invested, purchase_date, COALESCE(notes, '')
          FROM holding
          WHERE user_id = ? AND symbol = ?
      `
	var h model.Holding

	err := r.db.QueryRow(query, userID, symbol).Scan(
		&h.ID,
		&h.UserID,
		&h.Symbol,
		&h.Quantity,
		&h.AvgBuyPrice,
		&h.TotalInvested,
		&h.PurchaseDate,
		&h.Notes,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// InsertHolding creates a new holding row.
func (r *HoldingRepository) InsertHolding(ctx context.Context, h *model.Holding) error {
	query := `
          INSERT INTO holding (id, user_id, symbol, quantity, avg_buy_price, total_invested, purchase_date, notes)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Symbol,
		h.Quantity,
		h.AvgBuyPrice,
		h.TotalInvested,
		h.PurchaseDate,
		h.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding replaces the mutable fields of an existing holding row.
// The symbol and purchase date are written as carried on the model; callers
// are responsible for preserving the original purchase date across merges.
func (r *HoldingRepository) UpdateHolding(ctx context.Context, h *model.Holding) error {
	query := `
          UPDATE holding
          SET quantity = ?, avg_buy_price = ?, total_invested = ?, purchase_date = ?, notes = ?
          WHERE id = ?
      `

	res, err := r.db.ExecContext(ctx, query,
		h.Quantity,
		h.AvgBuyPrice,
		h.TotalInvested,
		h.PurchaseDate,
		h.Notes,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check holding update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHolding removes a holding row by ID.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holding WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check holding delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}
