package service

import (
	"coinwatch/internal/domain"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonitorService runs one tick of the price pipeline: fetch quotes, upsert
// the price table, append history, and fan alerts out to subscribers when a
// coin's percentage change crosses the threshold.
type MonitorService interface {
	RunTick(ctx context.Context) error
}

type MonitorConfig struct {
	ThresholdPercent decimal.Decimal
	// when > 0, a coin's stored reference price is only re-baselined after
	// this much time has passed since its last update
	MinRebaseInterval time.Duration
	QuoteCurrency     string
}

type monitorServiceHandler struct {
	Db                     *sql.DB
	Fetcher                PriceFetcher
	PriceRepository        repository.CryptoPriceRepository
	PriceHistoryRepository repository.PriceHistoryRepository
	SubscriberRepository   repository.SubscriberRepository
	LineRepository         repository.LineRepository
	Config                 MonitorConfig
}

func NewMonitorService(
	db *sql.DB,
	fetcher PriceFetcher,
	priceRepository repository.CryptoPriceRepository,
	priceHistoryRepository repository.PriceHistoryRepository,
	subscriberRepository repository.SubscriberRepository,
	lineRepository repository.LineRepository,
	config MonitorConfig,
) MonitorService {
	return &monitorServiceHandler{
		Db:                     db,
		Fetcher:                fetcher,
		PriceRepository:        priceRepository,
		PriceHistoryRepository: priceHistoryRepository,
		SubscriberRepository:   subscriberRepository,
		LineRepository:         lineRepository,
		Config:                 config,
	}
}

func (h *monitorServiceHandler) RunTick(ctx context.Context) error {
	log := logger.FromContext(ctx)

	prices, err := h.Fetcher.FetchPrices(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch prices: %w", err)
	}

	coins := make([]string, 0, len(prices))
	for coin := range prices {
		coins = append(coins, coin)
	}
	sort.Strings(coins)

	now := time.Now().UTC()
	updates := []domain.PriceUpdate{}
	for _, coin := range coins {
		update, err := h.recordPrice(coin, prices[coin], now)
		if err != nil {
			// a single bad row never stops the rest of the tick
			log.Errorw("failed to record price", "coin", coin, "error", err)
			continue
		}
		if update == nil {
			continue
		}
		if update.Change != nil {
			log.Infow("updated price",
				"coin", coin,
				"price", update.CurrentPrice.String(),
				"change", update.Change.StringFixed(2),
			)
		} else {
			log.Infow("inserted new coin", "coin", coin, "price", update.CurrentPrice.String())
		}
		updates = append(updates, *update)
	}

	h.notifyChanges(ctx, updates)

	return nil
}

// recordPrice appends the history row for this tick and upserts the coin's
// stored price. History grows on every tick; only the stored reference price
// is gated, so recordPrice returns nil when the minimum re-baseline interval
// has not yet elapsed and the stored row is left untouched.
func (h *monitorServiceHandler) recordPrice(coin string, price decimal.Decimal, now time.Time) (*domain.PriceUpdate, error) {
	err := h.PriceHistoryRepository.Add(h.Db, coin, price, now)
	if err != nil {
		return nil, err
	}

	if h.Config.MinRebaseInterval > 0 {
		stored, err := h.PriceRepository.Get(h.Db, coin)
		if err != nil {
			return nil, err
		}
		if stored != nil && now.Sub(stored.UpdatedAt) < h.Config.MinRebaseInterval {
			return nil, nil
		}
	}

	update, err := h.PriceRepository.Upsert(h.Db, coin, price, now)
	if err != nil {
		return nil, err
	}

	return update, nil
}

func (h *monitorServiceHandler) notifyChanges(ctx context.Context, updates []domain.PriceUpdate) {
	log := logger.FromContext(ctx)

	for _, update := range updates {
		if !shouldNotify(update, h.Config.ThresholdPercent) {
			continue
		}

		// always read the registry fresh; subscribers may have joined
		// since the last tick
		subscribers, err := h.SubscriberRepository.ListAll(h.Db)
		if err != nil {
			log.Errorw("failed to list subscribers", "coin", update.CoinID, "error", err)
			continue
		}

		message := formatAlert(update, h.Config.QuoteCurrency)
		for _, userID := range subscribers {
			err := h.LineRepository.Push(ctx, userID, message)
			if err != nil {
				// one dropped recipient must not block the rest
				log.Errorw("failed to push alert", "user", userID, "coin", update.CoinID, "error", err)
				continue
			}
			log.Infow("alert sent", "user", userID, "coin", update.CoinID)
		}
	}
}

// shouldNotify reports whether the update crosses the alert threshold. A
// first observation has no change and never notifies; a change exactly at
// the threshold does.
func shouldNotify(update domain.PriceUpdate, threshold decimal.Decimal) bool {
	if update.Change == nil {
		return false
	}
	return update.Change.Abs().GreaterThanOrEqual(threshold)
}

func formatAlert(update domain.PriceUpdate, quoteCurrency string) string {
	unit := strings.ToUpper(quoteCurrency)

	previous := "N/A"
	if update.PreviousPrice != nil {
		previous = update.PreviousPrice.String() + " " + unit
	}

	sign := ""
	if update.Change.IsPositive() {
		sign = "+"
	}

	return fmt.Sprintf(
		"⚠️ %s price changed %s%s%%\nPrevious: %s\nCurrent: %s %s",
		update.CoinID,
		sign,
		update.Change.StringFixed(2),
		previous,
		update.CurrentPrice.String(),
		unit,
	)
}
