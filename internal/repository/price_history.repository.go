package repository

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/db/models/postgres/public/table"
	"coinwatch/internal/domain"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceHistoryRepository interface {
	Add(db qrm.Executable, coinID string, price decimal.Decimal, observedAt time.Time) error
	List(db qrm.Queryable, coinID string, start, end time.Time) ([]domain.AssetPrice, error)
	// GetAt returns the newest observation at or before the cutoff, or nil
	// if no observation that old exists.
	GetAt(db qrm.Queryable, coinID string, cutoff time.Time) (*domain.AssetPrice, error)
}

func NewPriceHistoryRepository() PriceHistoryRepository {
	return priceHistoryRepositoryHandler{}
}

type priceHistoryRepositoryHandler struct{}

func (h priceHistoryRepositoryHandler) Add(db qrm.Executable, coinID string, price decimal.Decimal, observedAt time.Time) error {
	query := table.CryptoPriceHistory.
		INSERT(table.CryptoPriceHistory.AllColumns).
		MODEL(model.CryptoPriceHistory{
			CryptoPriceHistoryID: uuid.New(),
			CoinID:               coinID,
			Price:                price.InexactFloat64(),
			ObservedAt:           observedAt,
		})

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert price history for %s: %w", coinID, err)
	}

	return nil
}

func (h priceHistoryRepositoryHandler) List(db qrm.Queryable, coinID string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := table.CryptoPriceHistory.
		SELECT(table.CryptoPriceHistory.AllColumns).
		WHERE(postgres.AND(
			table.CryptoPriceHistory.CoinID.EQ(postgres.String(coinID)),
			table.CryptoPriceHistory.ObservedAt.BETWEEN(postgres.TimestampzT(start), postgres.TimestampzT(end)),
		)).
		ORDER_BY(table.CryptoPriceHistory.ObservedAt.ASC())

	result := []model.CryptoPriceHistory{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list price history for %s: %w", coinID, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			CoinID: p.CoinID,
			Price:  decimal.NewFromFloat(p.Price),
			Date:   p.ObservedAt,
		})
	}

	return out, nil
}

func (h priceHistoryRepositoryHandler) GetAt(db qrm.Queryable, coinID string, cutoff time.Time) (*domain.AssetPrice, error) {
	query := table.CryptoPriceHistory.
		SELECT(table.CryptoPriceHistory.AllColumns).
		WHERE(postgres.AND(
			table.CryptoPriceHistory.CoinID.EQ(postgres.String(coinID)),
			table.CryptoPriceHistory.ObservedAt.LT_EQ(postgres.TimestampzT(cutoff)),
		)).
		ORDER_BY(table.CryptoPriceHistory.ObservedAt.DESC()).
		LIMIT(1)

	result := model.CryptoPriceHistory{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price history for %s at %v: %w", coinID, cutoff, err)
	}

	return &domain.AssetPrice{
		CoinID: result.CoinID,
		Price:  decimal.NewFromFloat(result.Price),
		Date:   result.ObservedAt,
	}, nil
}
