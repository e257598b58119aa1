package format_test

import (
	"testing"

	"github.com/cryptoassets/portal/internal/format"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  string
	}{
		{"large price gets thousand separators", 67234.56, "$67,234.56"},
		{"dollar boundary keeps two decimals", 1, "$1.00"},
		{"sub-dollar price gets six decimals", 0.123456, "$0.123456"},
		{"tiny price stays readable", 0.000082, "$0.000082"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := format.Price(tc.price); got != tc.want {
				t.Errorf("Price(%v) = %q, want %q", tc.price, got, tc.want)
			}
		})
	}
}

func TestUSD(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"trillions", 2.34e12, "$2.34T"},
		{"billions", 89.5e9, "$89.50B"},
		{"millions", 1.5e6, "$1.50M"},
		{"thousands in full", 999999, "$999,999"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := format.USD(tc.amount); got != tc.want {
				t.Errorf("USD(%v) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name string
		pct  float64
		want string
	}{
		{"positive gets explicit plus", 2.345, "+2.35%"},
		{"zero counts as positive", 0, "+0.00%"},
		{"negative keeps its sign", -12.5, "-12.50%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := format.Percentage(tc.pct); got != tc.want {
				t.Errorf("Percentage(%v) = %q, want %q", tc.pct, got, tc.want)
			}
		})
	}
}
