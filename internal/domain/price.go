package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	CoinID string
	Price  decimal.Decimal
	Date   time.Time
}

// PriceUpdate is the outcome of upserting one observed price. Change is nil
// on the first observation of a coin, and when the minimum re-baseline
// interval has not yet elapsed.
type PriceUpdate struct {
	CoinID        string
	CurrentPrice  decimal.Decimal
	PreviousPrice *decimal.Decimal
	Change        *decimal.Decimal
	UpdatedAt     time.Time
}

// PercentageChange computes (current - previous) / previous * 100 rounded to
// two decimal places. A previous price of zero yields zero, not an error.
func PercentageChange(previous, current decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
