package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cryptoassets/portal/internal/feed"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/repository"
)

// refreshConcurrency bounds the number of assets refreshed in parallel.
const refreshConcurrency = 4

// MarketService serves the asset catalog and market statistics and owns the
// price refresh tick. Catalog reads fail open: if the store cannot be read,
// the built-in seed data is served instead of an error.
type MarketService struct {
	assetRepo *repository.AssetRepository
	statsRepo *repository.MarketStatsRepository
	feed      feed.Client // nil when running on simulated prices
}

// NewMarketService creates a new MarketService. Pass a nil feed client to run
// on simulated price ticks.
func NewMarketService(
	assetRepo *repository.AssetRepository,
	statsRepo *repository.MarketStatsRepository,
	feedClient feed.Client,
) *MarketService {
	return &MarketService{
		assetRepo: assetRepo,
		statsRepo: statsRepo,
		feed:      feedClient,
	}
}

// Seed inserts the built-in catalog and statistics when the tables are empty.
// Safe to call on every startup.
func (s *MarketService) Seed(ctx context.Context) error {
	count, err := s.assetRepo.CountAssets()
	if err != nil {
		return fmt.Errorf("failed to check asset catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	return s.Reseed(ctx)
}

// Reseed clears the catalog and statistics and rewrites them from the built-in
// seed data. Exposed through the admin API.
func (s *MarketService) Reseed(ctx context.Context) error {
	if err := s.assetRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.statsRepo.DeleteAll(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()

	for _, a := range seedAssets(now) {
		a.ID = uuid.New().String()
		if err := s.assetRepo.InsertAsset(ctx, &a); err != nil {
			return err
		}
	}

	stats := seedStats(now)
	stats.ID = uuid.New().String()
	if err := s.statsRepo.Insert(ctx, &stats); err != nil {
		return err
	}

	return nil
}

// Assets returns up to limit catalog entries ordered by market rank.
func (s *MarketService) Assets(limit int) []model.Asset {
	assets, err := s.assetRepo.GetAssets(limit)
	if err != nil {
		log.Printf("failed to load asset catalog, serving seed data: %v", err)
		fallback := seedAssets(time.Now().UTC())
		if limit < len(fallback) {
			fallback = fallback[:limit]
		}
		return fallback
	}
	return assets
}

// AssetBySymbol returns one catalog entry.
func (s *MarketService) AssetBySymbol(symbol string) (model.Asset, error) {
	return s.assetRepo.GetBySymbol(symbol)
}

// Stats returns the market statistics row, falling back to seed data when the
// store cannot be read.
func (s *MarketService) Stats() model.MarketStats {
	stats, err := s.statsRepo.Get()
	if err != nil {
		log.Printf("failed to load market stats, serving seed data: %v", err)
		return seedStats(time.Now().UTC())
	}
	return stats
}

// Search filters the catalog by case-insensitive substring match on symbol or
// name. A plain linear scan: the catalog holds tens of entries, not millions.
func (s *MarketService) Search(query string) []model.Asset {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []model.Asset{}
	}

	matches := []model.Asset{}
	for _, a := range s.Assets(50) {
		if strings.Contains(strings.ToLower(a.Symbol), term) ||
			strings.Contains(strings.ToLower(a.Name), term) {
			matches = append(matches, a)
		}
	}

	return matches
}

// Trending resolves the stats trending symbol lists against the catalog.
func (s *MarketService) Trending() (up, down []model.Asset) {
	stats := s.Stats()
	assets := s.Assets(50)

	bySymbol := make(map[string]model.Asset, len(assets))
	for _, a := range assets {
		bySymbol[a.Symbol] = a
	}

	up = []model.Asset{}
	for _, symbol := range stats.TrendingUp {
		if a, ok := bySymbol[symbol]; ok {
			up = append(up, a)
		}
	}

	down = []model.Asset{}
	for _, symbol := range stats.TrendingDown {
		if a, ok := bySymbol[symbol]; ok {
			down = append(down, a)
		}
	}

	return up, down
}

// PriceMap returns current prices for the given symbols. Store failures yield
// an empty map; valuation then degrades each holding to its cost basis.
func (s *MarketService) PriceMap(symbols []string) map[string]float64 {
	prices, err := s.assetRepo.GetPrices(symbols)
	if err != nil {
		log.Printf("failed to load asset prices: %v", err)
		return map[string]float64{}
	}
	return prices
}

// RefreshPrices ticks every asset in the catalog. With a live feed configured
// each symbol is quoted remotely; otherwise the price takes a simulated step of
// up to ±5%. Assets are refreshed concurrently with bounded parallelism; one
// failed symbol does not abort the others.
func (s *MarketService) RefreshPrices(ctx context.Context) error {
	assets, err := s.assetRepo.GetAssets(100)
	if err != nil {
		return fmt.Errorf("failed to load assets for refresh: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, asset := range assets {
		asset := asset
		g.Go(func() error {
			if err := s.refreshAsset(ctx, asset); err != nil {
				log.Printf("failed to refresh price for %s: %v", asset.Symbol, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *MarketService) refreshAsset(ctx context.Context, asset model.Asset) error {
	var newPrice float64

	if s.feed != nil {
		price, err := s.feed.LatestPrice(asset.Symbol)
		if err != nil {
			return err
		}
		newPrice = price
	} else {
		newPrice = simulateTick(asset.CurrentPrice)
	}

	change24h := (newPrice - asset.CurrentPrice) / asset.CurrentPrice * 100
	marketCap := newPrice * asset.CirculatingSupply

	return s.assetRepo.UpdatePrice(ctx, asset.Symbol, newPrice, change24h, marketCap, time.Now().UTC())
}

// simulateTick applies a uniform random step in [-5%, +5%] to a price.
func simulateTick(price float64) float64 {
	//nolint:gosec // G404: simulated market data, not security sensitive
	volatility := rand.Float64()*0.1 - 0.05
	return price * (1 + volatility)
}
