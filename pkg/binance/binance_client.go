package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.binance.com"

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

type tickerPriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// GetTickerPrice returns the latest trade price for one exchange symbol,
// e.g. XLMUSDT. Binance symbols are not interchangeable with CoinGecko ids.
func (c *Client) GetTickerPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}

	response, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch ticker %s from binance: %w", symbol, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return decimal.Zero, fmt.Errorf("binance request for %s failed with status code %d: %s", symbol, response.StatusCode, string(responseBytes))
	}

	responseBody := tickerPriceResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse binance response: %w", err)
	}

	price, err := decimal.NewFromString(responseBody.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse price %q for %s: %w", responseBody.Price, symbol, err)
	}

	return price, nil
}
