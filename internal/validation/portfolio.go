package validation

import (
	"github.com/cryptoassets/portal/internal/api/request"
)

// ValidateBuyRequest validates a portfolio buy request.
//
// Required fields:
//   - symbol: non-empty, uppercase letters and digits
//   - quantity: must be positive
//   - price: must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateBuyRequest(req request.BuyRequest) error {
	errors := make(map[string]string)

	if err := ValidateSymbol(NormalizeSymbol(req.Symbol)); err != nil {
		errors["symbol"] = err.Error()
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSellRequest validates a portfolio sell request.
// Same constraints as buy; the price only feeds the transaction record.
func ValidateSellRequest(req request.SellRequest) error {
	errors := make(map[string]string)

	if err := ValidateSymbol(NormalizeSymbol(req.Symbol)); err != nil {
		errors["symbol"] = err.Error()
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
