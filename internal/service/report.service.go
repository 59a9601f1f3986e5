package service

import (
	"coinwatch/internal/domain"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type ReportService interface {
	GetPriceReport(ctx context.Context) ([]domain.CoinReport, error)
	GetDailyReport(ctx context.Context, coinID *string) ([]domain.DailyReport, error)
}

type reportServiceHandler struct {
	Db                       *sql.DB
	PriceRepository          repository.CryptoPriceRepository
	PriceHistoryRepository   repository.PriceHistoryRepository
	DailyAggregateRepository repository.DailyAggregateRepository
	LookbackWindows          []domain.LookbackWindow
}

func NewReportService(
	db *sql.DB,
	priceRepository repository.CryptoPriceRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	dailyAggregateRepository repository.DailyAggregateRepository,
) ReportService {
	return &reportServiceHandler{
		Db:                       db,
		PriceRepository:          priceRepository,
		PriceHistoryRepository:   priceHistoryRepository,
		DailyAggregateRepository: dailyAggregateRepository,
		LookbackWindows:          domain.DefaultLookbackWindows,
	}
}

func (h *reportServiceHandler) GetPriceReport(ctx context.Context) ([]domain.CoinReport, error) {
	log := logger.FromContext(ctx)

	records, err := h.PriceRepository.List(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	now := time.Now().UTC()
	out := []domain.CoinReport{}
	for _, record := range records {
		report := domain.CoinReport{
			CoinID:           record.CoinID,
			CurrentPrice:     record.CurrentPrice,
			PercentageChange: record.PercentageChange,
			UpdatedAt:        record.UpdatedAt,
			WindowChanges:    map[string]float64{},
		}

		current := decimal.NewFromFloat(record.CurrentPrice)
		for _, window := range h.LookbackWindows {
			reference, err := h.PriceHistoryRepository.GetAt(h.Db, record.CoinID, now.Add(-window.Duration))
			if err != nil {
				log.Errorw("failed to resolve lookback reference", "coin", record.CoinID, "window", window.Label, "error", err)
				continue
			}
			if reference == nil || reference.Price.IsZero() {
				continue
			}
			report.WindowChanges[window.Label] = domain.PercentageChange(reference.Price, current).InexactFloat64()
		}

		if vol, ok := h.volatility(record.CoinID, now); ok {
			report.Volatility24h = &vol
		}

		out = append(out, report)
	}

	return out, nil
}

// volatility is the sample standard deviation of per-observation returns
// over the trailing 24 hours. It needs at least three observations.
func (h *reportServiceHandler) volatility(coinID string, now time.Time) (float64, bool) {
	observations, err := h.PriceHistoryRepository.List(h.Db, coinID, now.Add(-24*time.Hour), now)
	if err != nil || len(observations) < 3 {
		return 0, false
	}

	returns := []float64{}
	for i := 1; i < len(observations); i++ {
		prev := observations[i-1].Price
		if prev.IsZero() {
			continue
		}
		r := observations[i].Price.Sub(prev).Div(prev)
		returns = append(returns, r.InexactFloat64())
	}
	if len(returns) < 2 {
		return 0, false
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, false
	}

	return stdev, true
}

func (h *reportServiceHandler) GetDailyReport(ctx context.Context, coinID *string) ([]domain.DailyReport, error) {
	rows, err := h.DailyAggregateRepository.List(h.Db, coinID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily aggregates: %w", err)
	}

	out := []domain.DailyReport{}
	for _, row := range rows {
		out = append(out, domain.DailyReport{
			CoinID:     row.CoinID,
			Date:       row.Date.Format(time.DateOnly),
			OpenPrice:  row.OpenPrice,
			ClosePrice: row.ClosePrice,
			HighPrice:  row.HighPrice,
			LowPrice:   row.LowPrice,
		})
	}

	return out, nil
}
