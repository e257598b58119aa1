package validation

import (
	"fmt"
	"strings"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/model"
)

// ValidAlertType contains the allowed alert type values.
var ValidAlertType = map[string]bool{
	model.AlertAbove: true, model.AlertBelow: true, model.AlertBoth: true,
}

// ValidateAddWatchlistRequest validates a watchlist add request.
func ValidateAddWatchlistRequest(req request.AddWatchlistRequest) error {
	errors := make(map[string]string)

	if err := ValidateSymbol(NormalizeSymbol(req.Symbol)); err != nil {
		errors["symbol"] = err.Error()
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSetAlertRequest validates an alert configuration request.
//
// Required fields:
//   - targetPrice: must be positive
//   - alertType: one of above, below, both
func ValidateSetAlertRequest(req request.SetAlertRequest) error {
	errors := make(map[string]string)

	if req.TargetPrice <= 0 {
		errors["targetPrice"] = "targetPrice must be positive"
	}

	if strings.TrimSpace(req.AlertType) == "" {
		errors["alertType"] = "alertType is required"
	} else if !ValidAlertType[req.AlertType] {
		errors["alertType"] = fmt.Sprintf("invalid alertType: %s", req.AlertType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
