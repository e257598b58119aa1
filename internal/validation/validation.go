package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Common validation errors
var (
	ErrInvalidSymbol = fmt.Errorf("invalid symbol format")
	ErrInvalidEmail  = fmt.Errorf("invalid email format")
)

var (
	symbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateSymbol checks that a string is a plausible asset symbol:
// non-empty, at most 10 characters, uppercase letters and digits only.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return nil
}

// NormalizeSymbol trims whitespace and uppercases a symbol before validation.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateEmail performs a shallow shape check on an email address.
// Deliverability is proven by the OTP round trip, not here.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
