package request

// AddWatchlistRequest represents the body of POST /api/watchlist.
type AddWatchlistRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SetAlertRequest represents the body of PUT /api/watchlist/{symbol}/alert.
type SetAlertRequest struct {
	TargetPrice float64 `json:"targetPrice"`
	AlertType   string  `json:"alertType"`
}
