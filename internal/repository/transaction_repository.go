package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cryptoassets/portal/internal/model"
)

// TransactionRepository provides data access methods for the transaction audit log.
// The log is append-only: there are no update or delete methods.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// InsertTransaction appends one transaction to the log.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
          INSERT INTO "transaction" (id, user_id, symbol, type, quantity, price, total_amount, date, fees, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Symbol,
		t.Type,
		t.Quantity,
		t.Price,
		t.TotalAmount,
		t.Date,
		t.Fees,
		t.Notes,
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactions retrieves a user's most recent transactions, newest first.
// Returns an empty slice when the user has no transactions.
func (r *TransactionRepository) GetTransactions(userID string, limit int) ([]model.Transaction, error) {
	query := `
          SELECT id, user_id, symbol, type, quantity, price, total_amount, date, fees, COALESCE(notes, ''), created_at
          FROM "transaction"
          WHERE user_id = ?
          ORDER BY created_at DESC, id DESC
          LIMIT ?
      `

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Symbol,
			&t.Type,
			&t.Quantity,
			&t.Price,
			&t.TotalAmount,
			&t.Date,
			&t.Fees,
			&t.Notes,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}
