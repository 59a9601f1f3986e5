package repository

import (
	"coinwatch/internal/db/models/postgres/public/model"
	. "coinwatch/internal/db/models/postgres/public/table"
	"coinwatch/internal/domain"
	"errors"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type CryptoPriceRepository interface {
	Get(db qrm.Queryable, coinID string) (*model.CryptoPrice, error)
	List(db qrm.Queryable) ([]model.CryptoPrice, error)
	Upsert(db qrm.DB, coinID string, price decimal.Decimal, now time.Time) (*domain.PriceUpdate, error)
}

func NewCryptoPriceRepository() CryptoPriceRepository {
	return cryptoPriceRepositoryHandler{}
}

type cryptoPriceRepositoryHandler struct{}

// Get returns the stored row for the coin, or nil if the coin has never
// been observed.
func (h cryptoPriceRepositoryHandler) Get(db qrm.Queryable, coinID string) (*model.CryptoPrice, error) {
	query := CryptoPrice.
		SELECT(CryptoPrice.AllColumns).
		WHERE(CryptoPrice.CoinID.EQ(String(coinID)))

	result := model.CryptoPrice{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price for %s: %w", coinID, err)
	}

	return &result, nil
}

func (h cryptoPriceRepositoryHandler) List(db qrm.Queryable) ([]model.CryptoPrice, error) {
	query := CryptoPrice.
		SELECT(CryptoPrice.AllColumns).
		ORDER_BY(CryptoPrice.CoinID.ASC())

	result := []model.CryptoPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return result, nil
}

// Upsert records a newly observed price. On first observation the row is
// inserted with no previous price and no change; afterwards the old current
// price rolls into previous_price and the percentage change is recomputed.
func (h cryptoPriceRepositoryHandler) Upsert(db qrm.DB, coinID string, price decimal.Decimal, now time.Time) (*domain.PriceUpdate, error) {
	stored, err := h.Get(db, coinID)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		query := CryptoPrice.
			INSERT(CryptoPrice.CoinID, CryptoPrice.CurrentPrice, CryptoPrice.UpdatedAt).
			MODEL(model.CryptoPrice{
				CoinID:       coinID,
				CurrentPrice: price.InexactFloat64(),
				UpdatedAt:    now,
			})
		_, err = query.Exec(db)
		if err != nil {
			return nil, fmt.Errorf("failed to insert price for %s: %w", coinID, err)
		}

		return &domain.PriceUpdate{
			CoinID:       coinID,
			CurrentPrice: price,
			UpdatedAt:    now,
		}, nil
	}

	previous := decimal.NewFromFloat(stored.CurrentPrice)
	change := domain.PercentageChange(previous, price)

	query := CryptoPrice.
		UPDATE(CryptoPrice.CurrentPrice, CryptoPrice.PreviousPrice, CryptoPrice.PercentageChange, CryptoPrice.UpdatedAt).
		SET(
			Float(price.InexactFloat64()),
			Float(stored.CurrentPrice),
			Float(change.InexactFloat64()),
			TimestampzT(now),
		).
		WHERE(CryptoPrice.CoinID.EQ(String(coinID)))

	_, err = query.Exec(db)
	if err != nil {
		return nil, fmt.Errorf("failed to update price for %s: %w", coinID, err)
	}

	return &domain.PriceUpdate{
		CoinID:        coinID,
		CurrentPrice:  price,
		PreviousPrice: &previous,
		Change:        &change,
		UpdatedAt:     now,
	}, nil
}
