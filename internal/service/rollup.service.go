package service

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RollupService derives one open/high/low/close row per coin per UTC day
// from the tick-level price history. Existing rows are never overwritten.
type RollupService interface {
	RollupDay(ctx context.Context, date time.Time) error
}

type rollupServiceHandler struct {
	Db                       *sql.DB
	PriceRepository          repository.CryptoPriceRepository
	PriceHistoryRepository   repository.PriceHistoryRepository
	DailyAggregateRepository repository.DailyAggregateRepository
}

func NewRollupService(
	db *sql.DB,
	priceRepository repository.CryptoPriceRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	dailyAggregateRepository repository.DailyAggregateRepository,
) RollupService {
	return &rollupServiceHandler{
		Db:                       db,
		PriceRepository:          priceRepository,
		PriceHistoryRepository:   priceHistoryRepository,
		DailyAggregateRepository: dailyAggregateRepository,
	}
}

func (h *rollupServiceHandler) RollupDay(ctx context.Context, date time.Time) error {
	log := logger.FromContext(ctx)

	dayStart := repository.DateOnlyUTC(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	known, err := h.PriceRepository.List(h.Db)
	if err != nil {
		return fmt.Errorf("failed to list coins for rollup: %w", err)
	}

	aggregates := []model.DailyAggregate{}
	for _, coin := range known {
		observations, err := h.PriceHistoryRepository.List(h.Db, coin.CoinID, dayStart, dayEnd)
		if err != nil {
			log.Errorw("failed to list history for rollup", "coin", coin.CoinID, "error", err)
			continue
		}
		if len(observations) == 0 {
			continue
		}

		agg := model.DailyAggregate{
			CoinID:     coin.CoinID,
			Date:       dayStart,
			OpenPrice:  observations[0].Price.InexactFloat64(),
			ClosePrice: observations[len(observations)-1].Price.InexactFloat64(),
			HighPrice:  observations[0].Price.InexactFloat64(),
			LowPrice:   observations[0].Price.InexactFloat64(),
		}
		for _, o := range observations {
			p := o.Price.InexactFloat64()
			if p > agg.HighPrice {
				agg.HighPrice = p
			}
			if p < agg.LowPrice {
				agg.LowPrice = p
			}
		}
		aggregates = append(aggregates, agg)
	}

	if len(aggregates) == 0 {
		log.Infow("no observations to roll up", "date", dayStart.Format(time.DateOnly))
		return nil
	}

	err = h.DailyAggregateRepository.Add(h.Db, aggregates)
	if err != nil {
		return fmt.Errorf("failed to store daily aggregates: %w", err)
	}

	log.Infow("rolled up daily aggregates", "date", dayStart.Format(time.DateOnly), "coins", len(aggregates))
	return nil
}
