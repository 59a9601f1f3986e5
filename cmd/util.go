package cmd

import (
	"coinwatch/api"
	"coinwatch/internal"
	"coinwatch/internal/repository"
	"coinwatch/internal/service"
	"coinwatch/pkg/binance"
	"coinwatch/pkg/coingecko"
	"database/sql"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	_ "github.com/lib/pq"
)

type Handlers struct {
	Api            *api.ApiHandler
	MonitorService service.MonitorService
	RollupService  service.RollupService
	LineRepository repository.LineRepository

	PriceHistoryRepository repository.PriceHistoryRepository
	Config                 internal.MonitorConfig
	Port                   int
	Db                     *sql.DB
}

func CloseDependencies(h *Handlers) {
	err := h.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Handlers, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	priceRepository := repository.NewCryptoPriceRepository()
	priceHistoryRepository := repository.NewPriceHistoryRepository()
	subscriberRepository := repository.NewSubscriberRepository()
	dailyAggregateRepository := repository.NewDailyAggregateRepository()
	lineRepository := repository.NewLineRepository(secrets.Line.ChannelAccessToken, "")

	coingeckoClient := coingecko.NewClient("")

	var fetcher service.PriceFetcher
	switch secrets.Monitor.Provider {
	case "binance":
		fetcher = service.NewBinanceFetcher(
			binance.NewClient(""),
			coingeckoClient,
			secrets.Monitor.BinanceSymbols,
			secrets.Monitor.QuoteCurrency,
		)
	case "coingecko":
		fetcher = service.NewCoinGeckoFetcher(
			coingeckoClient,
			secrets.Monitor.Coins,
			secrets.Monitor.QuoteCurrency,
		)
	default:
		return nil, fmt.Errorf("unknown price provider %q", secrets.Monitor.Provider)
	}

	monitorService := service.NewMonitorService(
		dbConn,
		fetcher,
		priceRepository,
		priceHistoryRepository,
		subscriberRepository,
		lineRepository,
		service.MonitorConfig{
			ThresholdPercent:  decimal.NewFromFloat(secrets.Monitor.ThresholdPercent),
			MinRebaseInterval: secrets.Monitor.MinRebaseInterval(),
			QuoteCurrency:     secrets.Monitor.QuoteCurrency,
		},
	)

	rollupService := service.NewRollupService(
		dbConn,
		priceRepository,
		priceHistoryRepository,
		dailyAggregateRepository,
	)

	reportService := service.NewReportService(
		dbConn,
		priceRepository,
		priceHistoryRepository,
		dailyAggregateRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		SubscriberRepository: subscriberRepository,
		ReportService:        reportService,
	}

	return &Handlers{
		Api:            apiHandler,
		MonitorService: monitorService,
		RollupService:  rollupService,
		LineRepository: lineRepository,

		PriceHistoryRepository: priceHistoryRepository,

		Config: secrets.Monitor,
		Port:   secrets.Port,
		Db:     dbConn,
	}, nil
}
