package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.coingecko.com"

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

// GetSimplePrices looks up current prices for the given CoinGecko ids in one
// batched request. Ids unknown to the provider are simply missing from the
// returned map; callers must not assume every requested id is present.
func (c *Client) GetSimplePrices(ctx context.Context, ids []string, vsCurrency string) (map[string]decimal.Decimal, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v3/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL,
		url.QueryEscape(strings.Join(ids, ",")),
		url.QueryEscape(vsCurrency),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices from coingecko: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("coingecko request failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := map[string]map[string]json.Number{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, fmt.Errorf("failed to parse coingecko response: %w", err)
	}

	out := map[string]decimal.Decimal{}
	for id, quotes := range responseBody {
		quote, ok := quotes[vsCurrency]
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(quote.String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse price %q for %s: %w", quote.String(), id, err)
		}
		out[id] = price
	}

	return out, nil
}
