// Package format renders market figures for display: USD prices, abbreviated
// market caps and volumes, and signed percentages.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Price formats a USD price. Prices of one dollar and above get two decimal
// places; sub-dollar prices get six, so small-cap coins stay readable.
func Price(price float64) string {
	if price >= 1 {
		return printer.Sprintf("$%.2f", price)
	}
	return printer.Sprintf("$%.6f", price)
}

// USD abbreviates a large dollar amount to trillions, billions or millions.
// Amounts under a million are printed in full with thousand separators.
func USD(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", amount/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	default:
		return printer.Sprintf("$%.0f", amount)
	}
}

// Percentage formats a percentage with an explicit sign, e.g. "+2.34%".
func Percentage(pct float64) string {
	sign := ""
	if pct >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, pct)
}
