package repository

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type DailyAggregateRepository interface {
	// Add inserts the aggregate for (coin, date). Existing rows are left
	// untouched, so re-running a rollup is a no-op.
	Add(db qrm.DB, aggregates []model.DailyAggregate) error
	List(db qrm.Queryable, coinID *string, limit int64) ([]model.DailyAggregate, error)
}

func NewDailyAggregateRepository() DailyAggregateRepository {
	return dailyAggregateRepositoryHandler{}
}

type dailyAggregateRepositoryHandler struct{}

func (h dailyAggregateRepositoryHandler) Add(db qrm.DB, aggregates []model.DailyAggregate) error {
	if len(aggregates) == 0 {
		return nil
	}

	query := table.DailyAggregate.
		INSERT(table.DailyAggregate.AllColumns).
		MODELS(aggregates).
		ON_CONFLICT(table.DailyAggregate.CoinID, table.DailyAggregate.Date).
		DO_NOTHING()

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add daily aggregates: %w", err)
	}

	return nil
}

func (h dailyAggregateRepositoryHandler) List(db qrm.Queryable, coinID *string, limit int64) ([]model.DailyAggregate, error) {
	cond := postgres.Bool(true)
	if coinID != nil {
		cond = table.DailyAggregate.CoinID.EQ(postgres.String(*coinID))
	}

	query := table.DailyAggregate.
		SELECT(table.DailyAggregate.AllColumns).
		WHERE(cond).
		ORDER_BY(table.DailyAggregate.Date.DESC(), table.DailyAggregate.CoinID.ASC())

	if limit > 0 {
		query = query.LIMIT(limit)
	}

	result := []model.DailyAggregate{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily aggregates: %w", err)
	}

	return result, nil
}

// helper shared by the rollup service and the backfill script
func DateOnlyUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
