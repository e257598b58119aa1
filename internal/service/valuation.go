package service

import "github.com/cryptoassets/portal/internal/model"

// PortfolioValuation aggregates a set of holdings against current prices.
type PortfolioValuation struct {
	TotalValue             float64 `json:"totalValue"`
	TotalInvested          float64 `json:"totalInvested"`
	TotalProfitLoss        float64 `json:"totalProfitLoss"`
	TotalProfitLossPercent float64 `json:"totalProfitLossPercent"`
}

// Evaluate computes the market value, cost basis and profit/loss of a set of
// holdings. Holdings whose symbol is missing from the price map are valued at
// their average buy price, so a stale or failed price feed degrades the result
// toward cost basis instead of failing.
//
// Pure function: no side effects, deterministic given its inputs.
func Evaluate(holdings []model.Holding, prices map[string]float64) PortfolioValuation {
	var totalValue, totalInvested float64

	for _, h := range holdings {
		currentPrice, ok := prices[h.Symbol]
		if !ok {
			currentPrice = h.AvgBuyPrice
		}

		totalValue += h.Quantity * currentPrice
		totalInvested += h.TotalInvested
	}

	totalProfitLoss := totalValue - totalInvested

	var totalProfitLossPercent float64
	if totalInvested > 0 {
		totalProfitLossPercent = totalProfitLoss / totalInvested * 100
	}

	return PortfolioValuation{
		TotalValue:             totalValue,
		TotalInvested:          totalInvested,
		TotalProfitLoss:        totalProfitLoss,
		TotalProfitLossPercent: totalProfitLossPercent,
	}
}
