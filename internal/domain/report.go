package domain

import "time"

// LookbackWindow names one reporting horizon, e.g. "1h" / time.Hour.
type LookbackWindow struct {
	Label    string
	Duration time.Duration
}

// DefaultLookbackWindows are the horizons shown on the price report,
// shortest first.
var DefaultLookbackWindows = []LookbackWindow{
	{"15m", 15 * time.Minute},
	{"30m", 30 * time.Minute},
	{"1h", time.Hour},
	{"2h", 2 * time.Hour},
	{"4h", 4 * time.Hour},
	{"24h", 24 * time.Hour},
}

type CoinReport struct {
	CoinID           string             `json:"coinId"`
	CurrentPrice     float64            `json:"currentPrice"`
	PercentageChange *float64           `json:"percentageChange"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	WindowChanges    map[string]float64 `json:"windowChanges"`
	Volatility24h    *float64           `json:"volatility24h"`
}

type DailyReport struct {
	CoinID     string  `json:"coinId"`
	Date       string  `json:"date"`
	OpenPrice  float64 `json:"openPrice"`
	ClosePrice float64 `json:"closePrice"`
	HighPrice  float64 `json:"highPrice"`
	LowPrice   float64 `json:"lowPrice"`
}
