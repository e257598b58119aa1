package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/model"
	"github.com/cryptoassets/portal/internal/repository"
)

// PortfolioService maintains the cost-basis ledger: one holding per (user, symbol),
// merged on buys with weighted-average pricing and shrunk proportionally on sells.
// Every ledger mutation appends one row to the transaction audit log.
type PortfolioService struct {
	holdingRepo     *repository.HoldingRepository
	transactionRepo *repository.TransactionRepository
	marketService   *MarketService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	holdingRepo *repository.HoldingRepository,
	transactionRepo *repository.TransactionRepository,
	marketService *MarketService,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		marketService:   marketService,
	}
}

// Acquire records a buy. If the user already holds the symbol, the new quantity
// and cost merge into the existing holding:
//
//	q' = q + quantity
//	inv' = inv + quantity*price
//	avg' = inv' / q'
//
// The original purchase date is preserved across merges. Notes overwrite the
// stored ones only when the new call supplies them. A buy transaction with
// total_amount = quantity*price is appended to the log.
func (s *PortfolioService) Acquire(ctx context.Context, userID, symbol string, quantity, price float64, notes string) (model.Holding, error) {
	if quantity <= 0 {
		return model.Holding{}, apperrors.ErrInvalidQuantity
	}
	if price <= 0 {
		return model.Holding{}, apperrors.ErrInvalidPrice
	}

	now := time.Now().UTC()

	holding, err := s.holdingRepo.GetHoldingBySymbol(userID, symbol)
	switch {
	case err == apperrors.ErrHoldingNotFound:
		holding = model.Holding{
			ID:            uuid.New().String(),
			UserID:        userID,
			Symbol:        symbol,
			Quantity:      quantity,
			AvgBuyPrice:   price,
			TotalInvested: quantity * price,
			PurchaseDate:  now,
			Notes:         notes,
		}
		if err := s.holdingRepo.InsertHolding(ctx, &holding); err != nil {
			return model.Holding{}, err
		}

	case err != nil:
		return model.Holding{}, fmt.Errorf("failed to load holding: %w", err)

	default:
		holding.Quantity += quantity
		holding.TotalInvested += quantity * price
		holding.AvgBuyPrice = holding.TotalInvested / holding.Quantity
		if notes != "" {
			holding.Notes = notes
		}
		if err := s.holdingRepo.UpdateHolding(ctx, &holding); err != nil {
			return model.Holding{}, err
		}
	}

	if err := s.appendTransaction(ctx, userID, symbol, model.TransactionBuy, quantity, price, notes, now); err != nil {
		return model.Holding{}, err
	}

	return holding, nil
}

// Dispose records a sell. Selling the full held quantity (or more) removes the
// holding; a partial sell shrinks quantity and invested cost proportionally,
// leaving the average buy price untouched. The sell price feeds only the
// transaction record, never the remaining cost basis.
func (s *PortfolioService) Dispose(ctx context.Context, userID, symbol string, quantity, sellPrice float64) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	if sellPrice <= 0 {
		return apperrors.ErrInvalidPrice
	}

	holding, err := s.holdingRepo.GetHoldingBySymbol(userID, symbol)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if quantity >= holding.Quantity {
		if err := s.holdingRepo.DeleteHolding(ctx, holding.ID); err != nil {
			return err
		}
	} else {
		newQuantity := holding.Quantity - quantity
		holding.TotalInvested = holding.TotalInvested * (newQuantity / holding.Quantity)
		holding.Quantity = newQuantity
		if err := s.holdingRepo.UpdateHolding(ctx, &holding); err != nil {
			return err
		}
	}

	return s.appendTransaction(ctx, userID, symbol, model.TransactionSell, quantity, sellPrice, "", now)
}

func (s *PortfolioService) appendTransaction(ctx context.Context, userID, symbol, txType string, quantity, price float64, notes string, at time.Time) error {
	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Symbol:      symbol,
		Type:        txType,
		Quantity:    quantity,
		Price:       price,
		TotalAmount: quantity * price,
		Date:        at,
		Fees:        0,
		Notes:       notes,
		CreatedAt:   at,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// Holdings returns the user's ledger. Store failures degrade to an empty
// result set: the caller renders an empty portfolio rather than an error.
func (s *PortfolioService) Holdings(userID string) []model.Holding {
	holdings, err := s.holdingRepo.GetHoldings(userID)
	if err != nil {
		log.Printf("failed to load holdings for user %s: %v", userID, err)
		return []model.Holding{}
	}
	return holdings
}

// Transactions returns the user's most recent transactions, newest first.
// Store failures degrade to an empty result set.
func (s *PortfolioService) Transactions(userID string, limit int) []model.Transaction {
	transactions, err := s.transactionRepo.GetTransactions(userID, limit)
	if err != nil {
		log.Printf("failed to load transactions for user %s: %v", userID, err)
		return []model.Transaction{}
	}
	return transactions
}

// Summary values the user's ledger against current catalog prices. A failed
// price lookup yields an empty price map, which Evaluate degrades to cost basis.
func (s *PortfolioService) Summary(userID string) PortfolioValuation {
	holdings := s.Holdings(userID)

	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}

	prices := s.marketService.PriceMap(symbols)

	return Evaluate(holdings, prices)
}
