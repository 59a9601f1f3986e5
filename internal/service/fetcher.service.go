package service

import (
	"coinwatch/internal/logger"
	"coinwatch/pkg/binance"
	"coinwatch/pkg/coingecko"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceFetcher returns the latest price per coin id in the configured quote
// currency. A coin missing from the result simply had no usable quote this
// tick; implementations only return an error when the whole fetch is
// unusable.
type PriceFetcher interface {
	FetchPrices(ctx context.Context) (map[string]decimal.Decimal, error)
}

type coingeckoFetcher struct {
	client        *coingecko.Client
	coins         []string
	quoteCurrency string
}

func NewCoinGeckoFetcher(client *coingecko.Client, coins []string, quoteCurrency string) PriceFetcher {
	return &coingeckoFetcher{
		client:        client,
		coins:         coins,
		quoteCurrency: quoteCurrency,
	}
}

func (f *coingeckoFetcher) FetchPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	prices, err := f.client.GetSimplePrices(ctx, f.coins, f.quoteCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices from coingecko: %w", err)
	}

	for _, coin := range f.coins {
		if _, ok := prices[coin]; !ok {
			// a wrong slug yields no quote for that coin only
			log.Warnw("no quote returned for coin", "coin", coin)
		}
	}

	return prices, nil
}

type binanceFetcher struct {
	exchangeClient   *binance.Client
	conversionClient *coingecko.Client
	symbols          map[string]string
	quoteCurrency    string
}

// NewBinanceFetcher quotes each coin against USDT on the exchange and
// converts to the target currency via a tether lookup. Symbols maps coin ids
// to exchange ticker symbols.
func NewBinanceFetcher(exchangeClient *binance.Client, conversionClient *coingecko.Client, symbols map[string]string, quoteCurrency string) PriceFetcher {
	return &binanceFetcher{
		exchangeClient:   exchangeClient,
		conversionClient: conversionClient,
		symbols:          symbols,
		quoteCurrency:    quoteCurrency,
	}
}

func (f *binanceFetcher) FetchPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	// without the conversion rate every quote is meaningless, so a failure
	// here aborts the whole tick
	rates, err := f.conversionClient.GetSimplePrices(ctx, []string{"tether"}, f.quoteCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usdt conversion rate: %w", err)
	}
	rate, ok := rates["tether"]
	if !ok {
		return nil, fmt.Errorf("usdt conversion rate missing from response")
	}

	out := map[string]decimal.Decimal{}
	for coin, symbol := range f.symbols {
		price, err := f.exchangeClient.GetTickerPrice(ctx, symbol)
		if err != nil {
			log.Errorw("failed to fetch ticker", "coin", coin, "symbol", symbol, "error", err)
			continue
		}
		out[coin] = price.Mul(rate)
	}

	return out, nil
}
