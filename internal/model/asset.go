package model

import "time"

// Asset represents one cryptocurrency in the market catalog.
type Asset struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	CurrentPrice      float64   `json:"currentPrice"`
	MarketCap         float64   `json:"marketCap"`
	Volume24h         float64   `json:"volume24h"`
	PriceChange24h    float64   `json:"priceChange24h"`
	PriceChange7d     float64   `json:"priceChange7d"`
	CirculatingSupply float64   `json:"circulatingSupply"`
	TotalSupply       *float64  `json:"totalSupply,omitempty"`
	ATH               float64   `json:"ath"`
	ATL               float64   `json:"atl"`
	ImageURL          string    `json:"imageUrl"`
	Rank              int       `json:"rank"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// MarketStats represents the aggregate market statistics row.
// TrendingUp and TrendingDown hold symbol lists, stored as JSON arrays in the database.
type MarketStats struct {
	ID                     string    `json:"id"`
	TotalMarketCap         float64   `json:"totalMarketCap"`
	TotalVolume24h         float64   `json:"totalVolume24h"`
	BitcoinDominance       float64   `json:"bitcoinDominance"`
	EthereumDominance      float64   `json:"ethereumDominance"`
	ActiveCryptocurrencies int       `json:"activeCryptocurrencies"`
	MarketCapChange24h     float64   `json:"marketCapChange24h"`
	TrendingUp             []string  `json:"trendingUp"`
	TrendingDown           []string  `json:"trendingDown"`
	FearGreedIndex         int       `json:"fearGreedIndex"`
	LastUpdated            time.Time `json:"lastUpdated"`
}
