package validation_test

import (
	"errors"
	"testing"

	"github.com/cryptoassets/portal/internal/api/request"
	"github.com/cryptoassets/portal/internal/validation"
)

func TestValidateSymbol(t *testing.T) {
	valid := []string{"BTC", "ETH", "USDC", "A", "ABC1234567"}
	for _, symbol := range valid {
		if err := validation.ValidateSymbol(symbol); err != nil {
			t.Errorf("ValidateSymbol(%q) = %v, want nil", symbol, err)
		}
	}

	invalid := []string{"", "btc", "TOOLONGSYMBOL", "BT-C", "BTC ", "B TC"}
	for _, symbol := range invalid {
		if err := validation.ValidateSymbol(symbol); err == nil {
			t.Errorf("ValidateSymbol(%q) = nil, want error", symbol)
		}
	}
}

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"btc":    "BTC",
		" eth ":  "ETH",
		"USDC":   "USDC",
		"\tsol ": "SOL",
	}

	for input, want := range cases {
		if got := validation.NormalizeSymbol(input); got != want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if err := validation.ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "plain", "no@tld", "two@@example.com", "spaced @example.com"}
	for _, email := range invalid {
		if err := validation.ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateBuyRequest(t *testing.T) {
	t.Run("accepts a well-formed request", func(t *testing.T) {
		req := request.BuyRequest{Symbol: "btc", Quantity: 0.5, Price: 60000}
		if err := validation.ValidateBuyRequest(req); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		req := request.BuyRequest{Symbol: "b-d", Quantity: 0, Price: -1}

		err := validation.ValidateBuyRequest(req)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation.Error, got %T", err)
		}
		for _, field := range []string{"symbol", "quantity", "price"} {
			if _, ok := verr.Fields[field]; !ok {
				t.Errorf("Expected error for field %q, got %v", field, verr.Fields)
			}
		}
	})
}

func TestValidateSetAlertRequest(t *testing.T) {
	t.Run("accepts known alert types", func(t *testing.T) {
		for _, alertType := range []string{"above", "below", "both"} {
			req := request.SetAlertRequest{TargetPrice: 100, AlertType: alertType}
			if err := validation.ValidateSetAlertRequest(req); err != nil {
				t.Errorf("Expected nil for %q, got %v", alertType, err)
			}
		}
	})

	t.Run("rejects bad target price and type", func(t *testing.T) {
		req := request.SetAlertRequest{TargetPrice: 0, AlertType: "sideways"}

		err := validation.ValidateSetAlertRequest(req)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation.Error, got %T", err)
		}
		if len(verr.Fields) != 2 {
			t.Errorf("Expected 2 field errors, got %v", verr.Fields)
		}
	})
}

func TestValidateVerifyOTPRequest(t *testing.T) {
	t.Run("accepts numeric codes", func(t *testing.T) {
		req := request.VerifyOTPRequest{Email: "alice@example.com", Code: "123456"}
		if err := validation.ValidateVerifyOTPRequest(req); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
	})

	t.Run("rejects non-numeric codes", func(t *testing.T) {
		req := request.VerifyOTPRequest{Email: "alice@example.com", Code: "12a456"}

		err := validation.ValidateVerifyOTPRequest(req)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation.Error, got %T", err)
		}
		if _, ok := verr.Fields["code"]; !ok {
			t.Errorf("Expected error for code, got %v", verr.Fields)
		}
	})

	t.Run("rejects missing code", func(t *testing.T) {
		req := request.VerifyOTPRequest{Email: "alice@example.com"}
		if err := validation.ValidateVerifyOTPRequest(req); err == nil {
			t.Error("Expected error for missing code")
		}
	})
}
