package service

import (
	"coinwatch/pkg/binance"
	"coinwatch/pkg/coingecko"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_coingeckoFetcher_FetchPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("returns whatever quotes the provider knows", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/simple/price", r.URL.Path)
			require.Equal(t, "stellar,not-a-real-coin", r.URL.Query().Get("ids"))
			require.Equal(t, "thb", r.URL.Query().Get("vs_currencies"))
			fmt.Fprint(w, `{"stellar":{"thb":4.25}}`)
		}))
		defer server.Close()

		fetcher := NewCoinGeckoFetcher(coingecko.NewClient(server.URL), []string{"stellar", "not-a-real-coin"}, "thb")

		prices, err := fetcher.FetchPrices(ctx)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		require.Equal(t, "4.25", prices["stellar"].String())
	})

	t.Run("provider failure fails the whole batch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(429)
		}))
		defer server.Close()

		fetcher := NewCoinGeckoFetcher(coingecko.NewClient(server.URL), []string{"stellar"}, "thb")

		_, err := fetcher.FetchPrices(ctx)
		require.Error(t, err)
	})
}

func Test_binanceFetcher_FetchPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("converts exchange quotes to the target currency", func(t *testing.T) {
		conversionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"tether":{"thb":35}}`)
		}))
		defer conversionServer.Close()

		exchangeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/ticker/price", r.URL.Path)
			require.Equal(t, "XLMUSDT", r.URL.Query().Get("symbol"))
			fmt.Fprint(w, `{"symbol":"XLMUSDT","price":"2.00000000"}`)
		}))
		defer exchangeServer.Close()

		fetcher := NewBinanceFetcher(
			binance.NewClient(exchangeServer.URL),
			coingecko.NewClient(conversionServer.URL),
			map[string]string{"stellar": "XLMUSDT"},
			"thb",
		)

		prices, err := fetcher.FetchPrices(ctx)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		require.True(t, prices["stellar"].Equal(prices["stellar"].Truncate(0)))
		require.Equal(t, "70", prices["stellar"].Truncate(0).String())
	})

	t.Run("conversion failure aborts the fetch", func(t *testing.T) {
		conversionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		}))
		defer conversionServer.Close()

		fetcher := NewBinanceFetcher(
			binance.NewClient(""),
			coingecko.NewClient(conversionServer.URL),
			map[string]string{"stellar": "XLMUSDT"},
			"thb",
		)

		_, err := fetcher.FetchPrices(ctx)
		require.Error(t, err)
	})

	t.Run("a failing symbol is skipped, not fatal", func(t *testing.T) {
		conversionServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"tether":{"thb":35}}`)
		}))
		defer conversionServer.Close()

		exchangeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("symbol") == "XLMUSDT" {
				fmt.Fprint(w, `{"symbol":"XLMUSDT","price":"2.0"}`)
				return
			}
			w.WriteHeader(400)
		}))
		defer exchangeServer.Close()

		fetcher := NewBinanceFetcher(
			binance.NewClient(exchangeServer.URL),
			coingecko.NewClient(conversionServer.URL),
			map[string]string{"stellar": "XLMUSDT", "cardano": "BADSYMBOL"},
			"thb",
		)

		prices, err := fetcher.FetchPrices(ctx)
		require.NoError(t, err)
		require.Len(t, prices, 1)
		require.Contains(t, prices, "stellar")
	})
}
