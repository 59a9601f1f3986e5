package main

import (
	"coinwatch/cmd"
	"coinwatch/internal/logger"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "script",
		Short: "coinwatch maintenance commands",
	}
	root.AddCommand(rollupCmd(), exportCmd(), pushCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newContext() (context.Context, *cmd.Handlers, error) {
	handlers, err := cmd.InitializeDependencies()
	if err != nil {
		return nil, nil, err
	}
	ctx := logger.AddToContext(context.Background(), logger.New())
	return ctx, handlers, nil
}

func rollupCmd() *cobra.Command {
	var dateStr string
	var days int

	c := &cobra.Command{
		Use:   "rollup",
		Short: "backfill daily aggregates from price history",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, handlers, err := newContext()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handlers)

			end := time.Now().UTC().AddDate(0, 0, -1)
			if dateStr != "" {
				end, err = time.Parse(time.DateOnly, dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			for i := days - 1; i >= 0; i-- {
				day := end.AddDate(0, 0, -i)
				if err := handlers.RollupService.RollupDay(ctx, day); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&dateStr, "date", "", "last day to roll up (YYYY-MM-DD, default yesterday)")
	c.Flags().IntVar(&days, "days", 1, "number of days to roll up, ending at --date")
	return c
}

type historyRow struct {
	CoinID     string  `csv:"coin_id"`
	Price      float64 `csv:"price"`
	ObservedAt string  `csv:"observed_at"`
}

func exportCmd() *cobra.Command {
	var out string
	var coin string
	var days int

	c := &cobra.Command{
		Use:   "export",
		Short: "dump price history to csv",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, handlers, err := newContext()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handlers)

			end := time.Now().UTC()
			start := end.AddDate(0, 0, -days)

			prices, err := handlers.PriceHistoryRepository.List(handlers.Db, coin, start, end)
			if err != nil {
				return err
			}

			rows := []historyRow{}
			for _, p := range prices {
				rows = append(rows, historyRow{
					CoinID:     p.CoinID,
					Price:      p.Price.InexactFloat64(),
					ObservedAt: p.Date.Format(time.RFC3339),
				})
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			return gocsv.MarshalFile(&rows, f)
		},
	}
	c.Flags().StringVar(&out, "out", "price_history.csv", "output file")
	c.Flags().StringVar(&coin, "coin", "", "coin id to export")
	c.Flags().IntVar(&days, "days", 30, "number of trailing days to export")
	_ = c.MarkFlagRequired("coin")
	return c
}

func pushCmd() *cobra.Command {
	var to string
	var text string

	c := &cobra.Command{
		Use:   "push",
		Short: "send a test message to one subscriber",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, handlers, err := newContext()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handlers)

			return handlers.LineRepository.Push(ctx, to, text)
		},
	}
	c.Flags().StringVar(&to, "to", "", "recipient user id")
	c.Flags().StringVar(&text, "text", "coinwatch test message", "message text")
	_ = c.MarkFlagRequired("to")
	return c
}
