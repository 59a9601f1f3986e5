package service

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/domain"
	mock_repository "coinwatch/internal/repository/mocks"
	mock_service "coinwatch/internal/service/mocks"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func newTestMonitor(t *testing.T, config MonitorConfig) (
	*monitorServiceHandler,
	*mock_service.MockPriceFetcher,
	*mock_repository.MockCryptoPriceRepository,
	*mock_repository.MockPriceHistoryRepository,
	*mock_repository.MockSubscriberRepository,
	*mock_repository.MockLineRepository,
) {
	ctrl := gomock.NewController(t)
	fetcher := mock_service.NewMockPriceFetcher(ctrl)
	priceRepository := mock_repository.NewMockCryptoPriceRepository(ctrl)
	historyRepository := mock_repository.NewMockPriceHistoryRepository(ctrl)
	subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
	lineRepository := mock_repository.NewMockLineRepository(ctrl)

	handler := &monitorServiceHandler{
		Fetcher:                fetcher,
		PriceRepository:        priceRepository,
		PriceHistoryRepository: historyRepository,
		SubscriberRepository:   subscriberRepository,
		LineRepository:         lineRepository,
		Config:                 config,
	}

	return handler, fetcher, priceRepository, historyRepository, subscriberRepository, lineRepository
}

func Test_monitorServiceHandler_RunTick(t *testing.T) {
	ctx := context.Background()
	threshold := decimal.NewFromInt(5)

	t.Run("first observation stores the price without notifying", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, _, _ := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		price := decimal.NewFromInt(100)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", price, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:       "stellar",
				CurrentPrice: price,
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("notifies every subscriber when the change crosses the threshold", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, subscriberRepository, lineRepository := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		price := decimal.NewFromInt(106)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", price, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:        "stellar",
				CurrentPrice:  price,
				PreviousPrice: decPtr(decimal.NewFromInt(100)),
				Change:        decPtr(decimal.NewFromInt(6)),
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)
		subscriberRepository.EXPECT().ListAll(gomock.Any()).Return([]string{"U1", "U2"}, nil)

		wantMessage := "⚠️ stellar price changed +6.00%\nPrevious: 100 THB\nCurrent: 106 THB"
		lineRepository.EXPECT().Push(ctx, "U1", wantMessage).Return(nil)
		lineRepository.EXPECT().Push(ctx, "U2", wantMessage).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("stays quiet below the threshold", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, _, _ := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		price := decimal.NewFromInt(103)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", price, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:        "stellar",
				CurrentPrice:  price,
				PreviousPrice: decPtr(decimal.NewFromInt(100)),
				Change:        decPtr(decimal.NewFromInt(3)),
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("a change exactly at the threshold notifies", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, subscriberRepository, lineRepository := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		price := decimal.NewFromInt(105)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", price, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:        "stellar",
				CurrentPrice:  price,
				PreviousPrice: decPtr(decimal.NewFromInt(100)),
				Change:        decPtr(decimal.NewFromInt(5)),
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)
		subscriberRepository.EXPECT().ListAll(gomock.Any()).Return([]string{"U1"}, nil)
		lineRepository.EXPECT().Push(ctx, "U1", gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("keeps notifying remaining subscribers after a failed push", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, subscriberRepository, lineRepository := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		price := decimal.NewFromInt(90)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", price, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:        "stellar",
				CurrentPrice:  price,
				PreviousPrice: decPtr(decimal.NewFromInt(100)),
				Change:        decPtr(decimal.NewFromInt(-10)),
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)
		subscriberRepository.EXPECT().ListAll(gomock.Any()).Return([]string{"A", "B"}, nil)
		lineRepository.EXPECT().Push(ctx, "A", gomock.Any()).Return(fmt.Errorf("send failed"))
		lineRepository.EXPECT().Push(ctx, "B", gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("a failing coin does not block the rest of the tick", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, _, _ := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		cardano := decimal.NewFromInt(20)
		stellar := decimal.NewFromInt(4)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"cardano": cardano,
			"stellar": stellar,
		}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "cardano", cardano, gomock.Any()).Return(nil)
		priceRepository.EXPECT().Upsert(gomock.Any(), "cardano", cardano, gomock.Any()).
			Return(nil, fmt.Errorf("db failure"))
		priceRepository.EXPECT().Upsert(gomock.Any(), "stellar", stellar, gomock.Any()).
			Return(&domain.PriceUpdate{
				CoinID:       "stellar",
				CurrentPrice: stellar,
			}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", stellar, gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("skips re-baselining coins updated within the minimum interval but still appends history", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, _, _ := newTestMonitor(t, MonitorConfig{
			ThresholdPercent:  threshold,
			MinRebaseInterval: 5 * time.Minute,
			QuoteCurrency:     "thb",
		})

		price := decimal.NewFromInt(100)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"stellar": price,
		}, nil)
		historyRepository.EXPECT().Add(gomock.Any(), "stellar", price, gomock.Any()).Return(nil)
		priceRepository.EXPECT().Get(gomock.Any(), "stellar").Return(&model.CryptoPrice{
			CoinID:       "stellar",
			CurrentPrice: 99,
			UpdatedAt:    time.Now().UTC().Add(-time.Minute),
		}, nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("a subscriber lookup failure does not block alerts for other coins", func(t *testing.T) {
		handler, fetcher, priceRepository, historyRepository, subscriberRepository, lineRepository := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		cardano := decimal.NewFromInt(110)
		stellar := decimal.NewFromInt(110)
		fetcher.EXPECT().FetchPrices(ctx).Return(map[string]decimal.Decimal{
			"cardano": cardano,
			"stellar": stellar,
		}, nil)
		for _, coin := range []string{"cardano", "stellar"} {
			priceRepository.EXPECT().Upsert(gomock.Any(), coin, decimal.NewFromInt(110), gomock.Any()).
				Return(&domain.PriceUpdate{
					CoinID:        coin,
					CurrentPrice:  decimal.NewFromInt(110),
					PreviousPrice: decPtr(decimal.NewFromInt(100)),
					Change:        decPtr(decimal.NewFromInt(10)),
				}, nil)
			historyRepository.EXPECT().Add(gomock.Any(), coin, decimal.NewFromInt(110), gomock.Any()).Return(nil)
		}

		// coins fan out in sorted order, so cardano's lookup fails first
		gomock.InOrder(
			subscriberRepository.EXPECT().ListAll(gomock.Any()).Return(nil, fmt.Errorf("db failure")),
			subscriberRepository.EXPECT().ListAll(gomock.Any()).Return([]string{"U1"}, nil),
		)
		lineRepository.EXPECT().Push(ctx, "U1", gomock.Any()).Return(nil)

		err := handler.RunTick(ctx)
		require.NoError(t, err)
	})

	t.Run("fetch failure aborts the tick", func(t *testing.T) {
		handler, fetcher, _, _, _, _ := newTestMonitor(t, MonitorConfig{
			ThresholdPercent: threshold,
			QuoteCurrency:    "thb",
		})

		fetcher.EXPECT().FetchPrices(ctx).Return(nil, fmt.Errorf("provider down"))

		err := handler.RunTick(ctx)
		require.Error(t, err)
	})
}

func Test_shouldNotify(t *testing.T) {
	threshold := decimal.NewFromInt(5)

	require.False(t, shouldNotify(domain.PriceUpdate{}, threshold))
	require.False(t, shouldNotify(domain.PriceUpdate{
		Change: decPtr(decimal.NewFromFloat(4.99)),
	}, threshold))
	require.True(t, shouldNotify(domain.PriceUpdate{
		Change: decPtr(decimal.NewFromInt(5)),
	}, threshold))
	require.True(t, shouldNotify(domain.PriceUpdate{
		Change: decPtr(decimal.NewFromFloat(-5.01)),
	}, threshold))
}
