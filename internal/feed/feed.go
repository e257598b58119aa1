// Package feed fetches live crypto quotes from the Yahoo Finance chart API.
// The portal runs on simulated ticks by default; this client is the real
// integration point, enabled with PRICE_SOURCE=live.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client provides the latest traded price for an asset symbol.
type Client interface {
	LatestPrice(symbol string) (float64, error)
}

// YahooClient fetches quotes from Yahoo Finance. Crypto symbols are quoted
// against USD using Yahoo's SYMBOL-USD pair convention.
type YahooClient struct {
	httpClient *http.Client
}

// NewYahooClient creates a Yahoo quote client with a bounded request timeout.
func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// chartResponse is the subset of the Yahoo chart API response we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// LatestPrice returns the regular market price for the given asset symbol.
func (c *YahooClient) LatestPrice(symbol string) (float64, error) {
	url := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s-USD?interval=1d&range=1d", symbol)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var response chartResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, err
	}

	if response.Chart.Error != nil {
		return 0, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return 0, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	price := response.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("no market price returned for symbol %s", symbol)
	}

	return price, nil
}
