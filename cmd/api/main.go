package main

import (
	"coinwatch/cmd"
	"coinwatch/internal/logger"
	"coinwatch/internal/scheduler"
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/lib/pq"
)

func main() {
	// missing .env is fine in deployed environments
	_ = godotenv.Load()

	handlers, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handlers)

	zlog := logger.New()
	ctx := logger.AddToContext(context.Background(), zlog)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.New()
	sched.RunEvery(ctx, handlers.Config.PollInterval(), "price-monitor", handlers.MonitorService.RunTick)
	sched.RunDailyAt(ctx, handlers.Config.RollupHourUTC, "daily-rollup", func(ctx context.Context) error {
		// roll up the previous, fully-observed day
		return handlers.RollupService.RollupDay(ctx, yesterdayUTC())
	})

	zlog.Infow("starting api", "port", handlers.Port)
	err = handlers.Api.StartApi(handlers.Port)
	if err != nil {
		log.Fatal(err)
	}
}

func yesterdayUTC() time.Time {
	return time.Now().UTC().AddDate(0, 0, -1)
}
