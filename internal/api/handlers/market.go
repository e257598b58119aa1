package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/format"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/service"
	"github.com/cryptoassets/portal/internal/validation"
)

// defaultAssetLimit is used when the list endpoint gets no limit parameter.
const defaultAssetLimit = 50

// MarketHandler handles market data HTTP requests.
type MarketHandler struct {
	marketService *service.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// AssetResponse represents one catalog entry, with pre-formatted display
// figures alongside the raw numbers.
type AssetResponse struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	CurrentPrice      float64   `json:"currentPrice"`
	PriceDisplay      string    `json:"priceDisplay"`
	MarketCap         float64   `json:"marketCap"`
	MarketCapDisplay  string    `json:"marketCapDisplay"`
	Volume24h         float64   `json:"volume24h"`
	Volume24hDisplay  string    `json:"volume24hDisplay"`
	PriceChange24h    float64   `json:"priceChange24h"`
	Change24hDisplay  string    `json:"change24hDisplay"`
	PriceChange7d     float64   `json:"priceChange7d"`
	Change7dDisplay   string    `json:"change7dDisplay"`
	CirculatingSupply float64   `json:"circulatingSupply"`
	TotalSupply       *float64  `json:"totalSupply,omitempty"`
	ATH               float64   `json:"ath"`
	ATL               float64   `json:"atl"`
	ImageURL          string    `json:"imageUrl"`
	Rank              int       `json:"rank"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

func toAssetResponse(a model.Asset) AssetResponse {
	return AssetResponse{
		Symbol:            a.Symbol,
		Name:              a.Name,
		CurrentPrice:      a.CurrentPrice,
		PriceDisplay:      format.Price(a.CurrentPrice),
		MarketCap:         a.MarketCap,
		MarketCapDisplay:  format.USD(a.MarketCap),
		Volume24h:         a.Volume24h,
		Volume24hDisplay:  format.USD(a.Volume24h),
		PriceChange24h:    a.PriceChange24h,
		Change24hDisplay:  format.Percentage(a.PriceChange24h),
		PriceChange7d:     a.PriceChange7d,
		Change7dDisplay:   format.Percentage(a.PriceChange7d),
		CirculatingSupply: a.CirculatingSupply,
		TotalSupply:       a.TotalSupply,
		ATH:               a.ATH,
		ATL:               a.ATL,
		ImageURL:          a.ImageURL,
		Rank:              a.Rank,
		LastUpdated:       a.LastUpdated,
	}
}

func toAssetResponses(assets []model.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i, a := range assets {
		out[i] = toAssetResponse(a)
	}
	return out
}

// Assets handles GET /api/market. Supports an optional ?limit= parameter.
func (h *MarketHandler) Assets(w http.ResponseWriter, r *http.Request) {
	limit := defaultAssetLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondError(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = parsed
	}

	respondJSON(w, http.StatusOK, toAssetResponses(h.marketService.Assets(limit)))
}

// AssetBySymbol handles GET /api/market/{symbol}.
func (h *MarketHandler) AssetBySymbol(w http.ResponseWriter, r *http.Request) {
	symbol := validation.NormalizeSymbol(chi.URLParam(r, "symbol"))

	asset, err := h.marketService.AssetBySymbol(symbol)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAssetResponse(asset))
}

// Search handles GET /api/market/search?q=term.
func (h *MarketHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.RespondError(w, http.StatusBadRequest, "q parameter is required", "")
		return
	}

	respondJSON(w, http.StatusOK, toAssetResponses(h.marketService.Search(query)))
}

// MarketStatsResponse represents the aggregate market statistics.
type MarketStatsResponse struct {
	TotalMarketCap         float64   `json:"totalMarketCap"`
	TotalMarketCapDisplay  string    `json:"totalMarketCapDisplay"`
	TotalVolume24h         float64   `json:"totalVolume24h"`
	TotalVolume24hDisplay  string    `json:"totalVolume24hDisplay"`
	BitcoinDominance       float64   `json:"bitcoinDominance"`
	EthereumDominance      float64   `json:"ethereumDominance"`
	ActiveCryptocurrencies int       `json:"activeCryptocurrencies"`
	MarketCapChange24h     float64   `json:"marketCapChange24h"`
	Change24hDisplay       string    `json:"change24hDisplay"`
	FearGreedIndex         int       `json:"fearGreedIndex"`
	LastUpdated            time.Time `json:"lastUpdated"`
}

// Stats handles GET /api/market/stats.
func (h *MarketHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.marketService.Stats()

	respondJSON(w, http.StatusOK, MarketStatsResponse{
		TotalMarketCap:         stats.TotalMarketCap,
		TotalMarketCapDisplay:  format.USD(stats.TotalMarketCap),
		TotalVolume24h:         stats.TotalVolume24h,
		TotalVolume24hDisplay:  format.USD(stats.TotalVolume24h),
		BitcoinDominance:       stats.BitcoinDominance,
		EthereumDominance:      stats.EthereumDominance,
		ActiveCryptocurrencies: stats.ActiveCryptocurrencies,
		MarketCapChange24h:     stats.MarketCapChange24h,
		Change24hDisplay:       format.Percentage(stats.MarketCapChange24h),
		FearGreedIndex:         stats.FearGreedIndex,
		LastUpdated:            stats.LastUpdated,
	})
}

// TrendingResponse represents the trending movers lists.
type TrendingResponse struct {
	Up   []AssetResponse `json:"up"`
	Down []AssetResponse `json:"down"`
}

// Trending handles GET /api/market/trending.
func (h *MarketHandler) Trending(w http.ResponseWriter, r *http.Request) {
	up, down := h.marketService.Trending()

	respondJSON(w, http.StatusOK, TrendingResponse{
		Up:   toAssetResponses(up),
		Down: toAssetResponses(down),
	})
}
