package repository

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
)

type SubscriberRepository interface {
	// Register inserts the user id if it is not already present. The
	// returned flag reports whether a new row was created.
	Register(db qrm.DB, userID string) (bool, error)
	ListAll(db qrm.Queryable) ([]string, error)
}

func NewSubscriberRepository() SubscriberRepository {
	return subscriberRepositoryHandler{}
}

type subscriberRepositoryHandler struct{}

func (h subscriberRepositoryHandler) Register(db qrm.DB, userID string) (bool, error) {
	query := table.Subscriber.
		INSERT(table.Subscriber.UserID, table.Subscriber.RegisteredAt).
		MODEL(model.Subscriber{
			UserID:       userID,
			RegisteredAt: time.Now().UTC(),
		}).
		ON_CONFLICT(table.Subscriber.UserID).
		DO_NOTHING()

	result, err := query.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to register subscriber %s: %w", userID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

func (h subscriberRepositoryHandler) ListAll(db qrm.Queryable) ([]string, error) {
	query := table.Subscriber.
		SELECT(table.Subscriber.AllColumns).
		ORDER_BY(table.Subscriber.RegisteredAt.ASC())

	result := []model.Subscriber{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	out := []string{}
	for _, s := range result {
		out = append(out, s.UserID)
	}

	return out, nil
}
