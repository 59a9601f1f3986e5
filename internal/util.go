package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Secrets struct {
	Db      DbSecrets     `json:"db"`
	Line    LineSecrets   `json:"line"`
	Monitor MonitorConfig `json:"monitor"`
	Port    int           `json:"port"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

type LineSecrets struct {
	ChannelAccessToken string `json:"channelAccessToken"`
}

// MonitorConfig holds the tunables for the price monitor. The original
// deployments disagreed on thresholds, intervals and identifier schemes, so
// none of these are hardcoded.
type MonitorConfig struct {
	// coingecko or binance
	Provider string `json:"provider"`

	// CoinGecko slugs, e.g. "stellar", "ripple"
	Coins []string `json:"coins"`

	// maps a CoinGecko-style slug to a Binance ticker symbol, e.g.
	// "stellar" -> "XLMUSDT". only used when provider is binance.
	BinanceSymbols map[string]string `json:"binanceSymbols"`

	QuoteCurrency string `json:"quoteCurrency"`

	// notify when |percentage change| >= this value
	ThresholdPercent float64 `json:"thresholdPercent"`

	PollIntervalSeconds int `json:"pollIntervalSeconds"`

	// skip re-baselining a coin until this much time has passed since its
	// last update. zero disables the gate.
	MinRebaseIntervalSeconds int `json:"minRebaseIntervalSeconds"`

	RollupHourUTC int `json:"rollupHourUTC"`
}

func (c MonitorConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c MonitorConfig) MinRebaseInterval() time.Duration {
	return time.Duration(c.MinRebaseIntervalSeconds) * time.Second
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("COINWATCH_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("COINWATCH_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets.json: %w", err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	// credentials may be supplied through the environment instead of the
	// secrets file, matching how the bot was originally deployed
	if token := os.Getenv("LINE_ACCESS_TOKEN"); token != "" {
		secrets.Line.ChannelAccessToken = token
	}

	applyDefaults(&secrets)

	return &secrets, nil
}

func applyDefaults(s *Secrets) {
	if s.Monitor.Provider == "" {
		s.Monitor.Provider = "coingecko"
	}
	if s.Monitor.QuoteCurrency == "" {
		s.Monitor.QuoteCurrency = "thb"
	}
	if s.Monitor.ThresholdPercent == 0 {
		s.Monitor.ThresholdPercent = 5
	}
	if s.Monitor.PollIntervalSeconds == 0 {
		s.Monitor.PollIntervalSeconds = 300
	}
	if s.Port == 0 {
		s.Port = 8080
	}
}
