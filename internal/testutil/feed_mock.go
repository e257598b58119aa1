package testutil

import "sync"

// StaticFeed is a mock implementation of feed.Client for testing.
// It returns fixed prices instead of making actual API calls. Safe for
// concurrent use; the price refresh queries symbols in parallel.
type StaticFeed struct {
	mu sync.Mutex
	// Prices maps symbol to the price to return
	Prices map[string]float64
	// Err is the error to return from LatestPrice
	Err error
	// queries tracks how many times LatestPrice was called
	queries int
}

// NewStaticFeed creates a mock feed returning the given prices.
func NewStaticFeed(prices map[string]float64) *StaticFeed {
	return &StaticFeed{Prices: prices}
}

// LatestPrice returns the configured price for the symbol, or the configured error.
func (f *StaticFeed) LatestPrice(symbol string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries++
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Prices[symbol], nil
}

// QueryCount returns how many times LatestPrice was called.
func (f *StaticFeed) QueryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries
}
