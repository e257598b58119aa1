package service

import (
	"time"

	"github.com/cryptoassets/portal/internal/model"
)

func ptr(v float64) *float64 { return &v }

// seedAssets is the built-in market catalog. It seeds an empty database and
// doubles as the fail-open fallback when the asset table cannot be read.
func seedAssets(now time.Time) []model.Asset {
	return []model.Asset{
		{
			Symbol: "BTC", Name: "Bitcoin",
			CurrentPrice: 67234.56, MarketCap: 1.32e12, Volume24h: 2.85e10,
			PriceChange24h: 2.34, PriceChange7d: -1.23,
			CirculatingSupply: 19654218, TotalSupply: ptr(21000000),
			ATH: 73750.07, ATL: 67.81,
			ImageURL: "https://cryptologos.cc/logos/bitcoin-btc-logo.png",
			Rank:     1, LastUpdated: now,
		},
		{
			Symbol: "ETH", Name: "Ethereum",
			CurrentPrice: 3456.78, MarketCap: 4.16e11, Volume24h: 1.52e10,
			PriceChange24h: 1.87, PriceChange7d: 4.12,
			CirculatingSupply: 120280000,
			ATH:               4878.26, ATL: 0.43,
			ImageURL: "https://cryptologos.cc/logos/ethereum-eth-logo.png",
			Rank:     2, LastUpdated: now,
		},
		{
			Symbol: "BNB", Name: "BNB",
			CurrentPrice: 598.45, MarketCap: 8.75e10, Volume24h: 1.8e9,
			PriceChange24h: -0.67, PriceChange7d: 2.89,
			CirculatingSupply: 146267068, TotalSupply: ptr(200000000),
			ATH: 686.31, ATL: 0.10,
			ImageURL: "https://cryptologos.cc/logos/bnb-bnb-logo.png",
			Rank:     3, LastUpdated: now,
		},
		{
			Symbol: "SOL", Name: "Solana",
			CurrentPrice: 189.23, MarketCap: 8.92e10, Volume24h: 3.2e9,
			PriceChange24h: 5.67, PriceChange7d: 12.34,
			CirculatingSupply: 471000000,
			ATH:               259.96, ATL: 0.50,
			ImageURL: "https://cryptologos.cc/logos/solana-sol-logo.png",
			Rank:     4, LastUpdated: now,
		},
		{
			Symbol: "XRP", Name: "Ripple",
			CurrentPrice: 0.5234, MarketCap: 2.98e10, Volume24h: 1.1e9,
			PriceChange24h: -2.14, PriceChange7d: -0.89,
			CirculatingSupply: 56925600000, TotalSupply: ptr(99987000000),
			ATH: 3.40, ATL: 0.002802,
			ImageURL: "https://cryptologos.cc/logos/xrp-xrp-logo.png",
			Rank:     5, LastUpdated: now,
		},
		{
			Symbol: "USDC", Name: "USD Coin",
			CurrentPrice: 1.00, MarketCap: 3.45e10, Volume24h: 5.6e9,
			PriceChange24h: 0.01, PriceChange7d: -0.02,
			CirculatingSupply: 34500000000,
			ATH:               1.17, ATL: 0.877,
			ImageURL: "https://cryptologos.cc/logos/usd-coin-usdc-logo.png",
			Rank:     6, LastUpdated: now,
		},
		{
			Symbol: "ADA", Name: "Cardano",
			CurrentPrice: 0.4567, MarketCap: 1.62e10, Volume24h: 8.9e8,
			PriceChange24h: 1.23, PriceChange7d: -3.45,
			CirculatingSupply: 35482000000, TotalSupply: ptr(45000000000),
			ATH: 3.09, ATL: 0.017354,
			ImageURL: "https://cryptologos.cc/logos/cardano-ada-logo.png",
			Rank:     7, LastUpdated: now,
		},
		{
			Symbol: "DOGE", Name: "Dogecoin",
			CurrentPrice: 0.1234, MarketCap: 1.81e10, Volume24h: 1.4e9,
			PriceChange24h: 3.45, PriceChange7d: 8.92,
			CirculatingSupply: 146700000000,
			ATH:               0.738, ATL: 0.00008547,
			ImageURL: "https://cryptologos.cc/logos/dogecoin-doge-logo.png",
			Rank:     8, LastUpdated: now,
		},
		{
			Symbol: "TRX", Name: "TRON",
			CurrentPrice: 0.1678, MarketCap: 1.45e10, Volume24h: 7.5e8,
			PriceChange24h: -1.56, PriceChange7d: 2.78,
			CirculatingSupply: 86400000000,
			ATH:               0.231, ATL: 0.00180434,
			ImageURL: "https://cryptologos.cc/logos/tron-trx-logo.png",
			Rank:     9, LastUpdated: now,
		},
		{
			Symbol: "AVAX", Name: "Avalanche",
			CurrentPrice: 34.56, MarketCap: 1.38e10, Volume24h: 5.6e8,
			PriceChange24h: 2.89, PriceChange7d: -4.67,
			CirculatingSupply: 400000000, TotalSupply: ptr(720000000),
			ATH: 146.22, ATL: 2.79,
			ImageURL: "https://cryptologos.cc/logos/avalanche-avax-logo.png",
			Rank:     10, LastUpdated: now,
		},
	}
}

// seedStats is the built-in market statistics row, paired with seedAssets.
func seedStats(now time.Time) model.MarketStats {
	return model.MarketStats{
		TotalMarketCap:         2.34e12,
		TotalVolume24h:         8.95e10,
		BitcoinDominance:       56.4,
		EthereumDominance:      17.8,
		ActiveCryptocurrencies: 13847,
		MarketCapChange24h:     1.23,
		TrendingUp:             []string{"SOL", "DOGE", "AVAX"},
		TrendingDown:           []string{"XRP", "TRX", "ADA"},
		FearGreedIndex:         68,
		LastUpdated:            now,
	}
}
