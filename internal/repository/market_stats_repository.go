package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
)

// MarketStatsRepository provides data access methods for the market_stats table.
// The table holds a single row; trending symbol lists are stored as JSON arrays.
type MarketStatsRepository struct {
	db *sql.DB
}

// NewMarketStatsRepository creates a new MarketStatsRepository with the provided database connection.
func NewMarketStatsRepository(db *sql.DB) *MarketStatsRepository {
	return &MarketStatsRepository{db: db}
}

// Get retrieves the market statistics row.
func (r *MarketStatsRepository) Get() (model.MarketStats, error) {
	query := `
          SELECT id, total_market_cap, total_volume_24h, bitcoin_dominance, ethereum_dominance,
              active_cryptocurrencies, market_cap_change_24h, trending_up, trending_down,
              fear_greed_index, last_updated
          FROM market_stats
          LIMIT 1
      `

	var s model.MarketStats
	var trendingUp, trendingDown string

	err := r.db.QueryRow(query).Scan(
		&s.ID,
		&s.TotalMarketCap,
		&s.TotalVolume24h,
		&s.BitcoinDominance,
		&s.EthereumDominance,
		&s.ActiveCryptocurrencies,
		&s.MarketCapChange24h,
		&trendingUp,
		&trendingDown,
		&s.FearGreedIndex,
		&s.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return model.MarketStats{}, apperrors.ErrMarketStatsNotFound
	}
	if err != nil {
		return model.MarketStats{}, fmt.Errorf("failed to query market_stats table: %w", err)
	}

	if err := json.Unmarshal([]byte(trendingUp), &s.TrendingUp); err != nil {
		return model.MarketStats{}, fmt.Errorf("failed to decode trending_up list: %w", err)
	}
	if err := json.Unmarshal([]byte(trendingDown), &s.TrendingDown); err != nil {
		return model.MarketStats{}, fmt.Errorf("failed to decode trending_down list: %w", err)
	}

	return s, nil
}

// Insert writes the market statistics row.
func (r *MarketStatsRepository) Insert(ctx context.Context, s *model.MarketStats) error {
	trendingUp, err := json.Marshal(s.TrendingUp)
	if err != nil {
		return fmt.Errorf("failed to encode trending_up list: %w", err)
	}
	trendingDown, err := json.Marshal(s.TrendingDown)
	if err != nil {
		return fmt.Errorf("failed to encode trending_down list: %w", err)
	}

	query := `
          INSERT INTO market_stats (id, total_market_cap, total_volume_24h, bitcoin_dominance,
              ethereum_dominance, active_cryptocurrencies, market_cap_change_24h,
              trending_up, trending_down, fear_greed_index, last_updated)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.TotalMarketCap,
		s.TotalVolume24h,
		s.BitcoinDominance,
		s.EthereumDominance,
		s.ActiveCryptocurrencies,
		s.MarketCapChange24h,
		string(trendingUp),
		string(trendingDown),
		s.FearGreedIndex,
		s.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert market stats: %w", err)
	}

	return nil
}

// DeleteAll clears the market_stats table. Used by the admin reseed operation.
func (r *MarketStatsRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM market_stats`); err != nil {
		return fmt.Errorf("failed to clear market_stats table: %w", err)
	}
	return nil
}
