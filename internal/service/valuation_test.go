package service_test

import (
	"math"
	"testing"

	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/service"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

// TestEvaluate tests the portfolio valuation function.
//
// WHY: Evaluate is the single place profit/loss math happens. It must degrade
// to cost basis when prices are missing and never divide by a zero invested
// amount.
func TestEvaluate(t *testing.T) {
	t.Run("returns zeros for empty portfolio", func(t *testing.T) {
		// Execute
		result := service.Evaluate(nil, map[string]float64{})

		// Assert
		if result.TotalValue != 0 || result.TotalInvested != 0 ||
			result.TotalProfitLoss != 0 || result.TotalProfitLossPercent != 0 {
			t.Errorf("Expected all-zero valuation, got %+v", result)
		}
	})

	t.Run("values holdings against current prices", func(t *testing.T) {
		// Setup: 2 BTC at 65000 average, now worth 70000 each
		holdings := []model.Holding{
			{Symbol: "BTC", Quantity: 2, AvgBuyPrice: 65000, TotalInvested: 130000},
		}
		prices := map[string]float64{"BTC": 70000}

		// Execute
		result := service.Evaluate(holdings, prices)

		// Assert
		if !almostEqual(result.TotalValue, 140000) {
			t.Errorf("Expected total value 140000, got %v", result.TotalValue)
		}
		if !almostEqual(result.TotalInvested, 130000) {
			t.Errorf("Expected total invested 130000, got %v", result.TotalInvested)
		}
		if !almostEqual(result.TotalProfitLoss, 10000) {
			t.Errorf("Expected profit 10000, got %v", result.TotalProfitLoss)
		}
		if !almostEqual(result.TotalProfitLossPercent, 7.6923076923076925) {
			t.Errorf("Expected profit percent ~7.6923, got %v", result.TotalProfitLossPercent)
		}
	})

	t.Run("falls back to average buy price for missing symbols", func(t *testing.T) {
		// Setup: no price for ETH, so it is valued at cost
		holdings := []model.Holding{
			{Symbol: "BTC", Quantity: 1, AvgBuyPrice: 60000, TotalInvested: 60000},
			{Symbol: "ETH", Quantity: 10, AvgBuyPrice: 3000, TotalInvested: 30000},
		}
		prices := map[string]float64{"BTC": 66000}

		// Execute
		result := service.Evaluate(holdings, prices)

		// Assert
		if !almostEqual(result.TotalValue, 96000) {
			t.Errorf("Expected total value 96000, got %v", result.TotalValue)
		}
		if !almostEqual(result.TotalProfitLoss, 6000) {
			t.Errorf("Expected profit 6000, got %v", result.TotalProfitLoss)
		}
	})

	t.Run("reports losses as negative values", func(t *testing.T) {
		holdings := []model.Holding{
			{Symbol: "SOL", Quantity: 100, AvgBuyPrice: 150, TotalInvested: 15000},
		}
		prices := map[string]float64{"SOL": 120}

		// Execute
		result := service.Evaluate(holdings, prices)

		// Assert
		if !almostEqual(result.TotalProfitLoss, -3000) {
			t.Errorf("Expected loss -3000, got %v", result.TotalProfitLoss)
		}
		if !almostEqual(result.TotalProfitLossPercent, -20) {
			t.Errorf("Expected -20%%, got %v", result.TotalProfitLossPercent)
		}
	})

	t.Run("keeps percent at zero when nothing is invested", func(t *testing.T) {
		// Setup: zero invested amount must not divide
		holdings := []model.Holding{
			{Symbol: "FREE", Quantity: 5, AvgBuyPrice: 0, TotalInvested: 0},
		}
		prices := map[string]float64{"FREE": 10}

		// Execute
		result := service.Evaluate(holdings, prices)

		// Assert
		if !almostEqual(result.TotalValue, 50) {
			t.Errorf("Expected total value 50, got %v", result.TotalValue)
		}
		if result.TotalProfitLossPercent != 0 {
			t.Errorf("Expected percent 0 with zero invested, got %v", result.TotalProfitLossPercent)
		}
	})
}
