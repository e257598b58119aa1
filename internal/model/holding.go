package model

import "time"

// Holding represents a user's current position in one asset.
// At most one holding exists per (user, symbol) pair; buys merge into it
// and sells shrink or remove it.
type Holding struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Symbol        string    `json:"symbol"`
	Quantity      float64   `json:"quantity"`
	AvgBuyPrice   float64   `json:"avgBuyPrice"`
	TotalInvested float64   `json:"totalInvested"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	Notes         string    `json:"notes,omitempty"`
}
