package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// AssetRepository provides data access methods for the asset catalog table.
// The catalog is shared across all users; only the price refresh loop and the
// admin reseed endpoint write to it.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `id, symbol, name, current_price, market_cap, volume_24h,
		price_change_24h, price_change_7d, circulating_supply, total_supply,
		ath, atl, image_url, rank, last_updated`

func scanAsset(row interface{ Scan(...any) error }) (model.Asset, error) {
	var a model.Asset
	err := row.Scan(
		&a.ID,
		&a.Symbol,
		&a.Name,
		&a.CurrentPrice,
		&a.MarketCap,
		&a.Volume24h,
		&a.PriceChange24h,
		&a.PriceChange7d,
		&a.CirculatingSupply,
		&a.TotalSupply,
		&a.ATH,
		&a.ATL,
		&a.ImageURL,
		&a.Rank,
		&a.LastUpdated,
	)
	return a, err
}

// GetAssets retrieves up to limit assets ordered by market rank.
func (r *AssetRepository) GetAssets(limit int) ([]model.Asset, error) {
	//#nosec G202 -- Safe: column list is a package constant, not user input
	query := `SELECT ` + assetColumns + ` FROM asset ORDER BY rank ASC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset table results: %w", err)
		}
		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetBySymbol retrieves one asset by symbol.
func (r *AssetRepository) GetBySymbol(symbol string) (model.Asset, error) {
	//#nosec G202 -- Safe: column list is a package constant, not user input
	query := `SELECT ` + assetColumns + ` FROM asset WHERE symbol = ?`

	a, err := scanAsset(r.db.QueryRow(query, symbol))
	if err == sql.ErrNoRows {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to query asset: %w", err)
	}

	return a, nil
}

// GetPrices returns a symbol -> current price map for the given symbols.
// Symbols absent from the catalog are simply missing from the map.
func (r *AssetRepository) GetPrices(symbols []string) (map[string]float64, error) {
	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	placeholders := make([]string, len(symbols))
	args := make([]any, len(symbols))
	for i, s := range symbols {
		placeholders[i] = "?"
		args[i] = s
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT symbol, current_price FROM asset WHERE symbol IN (` + strings.Join(placeholders, ",") + `)`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]float64, len(symbols))

	for rows.Next() {
		var symbol string
		var price float64
		if err := rows.Scan(&symbol, &price); err != nil {
			return nil, fmt.Errorf("failed to scan asset price results: %w", err)
		}
		prices[symbol] = price
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset prices: %w", err)
	}

	return prices, nil
}

// CountAssets returns the number of assets in the catalog.
func (r *AssetRepository) CountAssets() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM asset`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

// InsertAsset adds one asset to the catalog.
func (r *AssetRepository) InsertAsset(ctx context.Context, a *model.Asset) error {
	query := `
          INSERT INTO asset (id, symbol, name, current_price, market_cap, volume_24h,
              price_change_24h, price_change_7d, circulating_supply, total_supply,
              ath, atl, image_url, rank, last_updated)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Symbol,
		a.Name,
		a.CurrentPrice,
		a.MarketCap,
		a.Volume24h,
		a.PriceChange24h,
		a.PriceChange7d,
		a.CirculatingSupply,
		a.TotalSupply,
		a.ATH,
		a.ATL,
		a.ImageURL,
		a.Rank,
		a.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// UpdatePrice writes a new tick for one asset: price, 24h change, market cap
// and the refresh timestamp.
func (r *AssetRepository) UpdatePrice(ctx context.Context, symbol string, price, change24h, marketCap float64, updated time.Time) error {
	query := `
          UPDATE asset
          SET current_price = ?, price_change_24h = ?, market_cap = ?, last_updated = ?
          WHERE symbol = ?
      `

	res, err := r.db.ExecContext(ctx, query, price, change24h, marketCap, updated, symbol)
	if err != nil {
		return fmt.Errorf("failed to update asset price: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check asset price update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}

// DeleteAll clears the asset catalog. Used by the admin reseed operation.
func (r *AssetRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM asset`); err != nil {
		return fmt.Errorf("failed to clear asset table: %w", err)
	}
	return nil
}
