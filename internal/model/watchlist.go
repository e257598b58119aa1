package model

import "time"

// Alert type values for watchlist price alerts.
const (
	AlertAbove = "above"
	AlertBelow = "below"
	AlertBoth  = "both"
)

// WatchlistItem represents a symbol a user tracks without necessarily holding it.
// Unique per (user, symbol). The alert fields are inert configuration: nothing in
// the system evaluates or fires them.
type WatchlistItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	AddedDate    time.Time `json:"addedDate"`
	AlertEnabled bool      `json:"alertEnabled"`
	TargetPrice  *float64  `json:"targetPrice,omitempty"`
	AlertType    *string   `json:"alertType,omitempty"`
}
