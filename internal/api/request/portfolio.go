package request

// BuyRequest represents the body of POST /api/portfolio/buy.
type BuyRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// SellRequest represents the body of POST /api/portfolio/sell.
type SellRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}
