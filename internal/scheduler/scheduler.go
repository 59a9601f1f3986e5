package scheduler

import (
	"coinwatch/internal/logger"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs named jobs on fixed intervals or once per day at a fixed
// UTC hour. A job that is still running when its next firing comes due is
// skipped rather than run concurrently, so two ticks can never race on the
// same price rows.
type Scheduler struct {
	wg sync.WaitGroup
}

func New() *Scheduler {
	return &Scheduler{}
}

// RunEvery starts a goroutine firing fn on the given interval until the
// context is cancelled.
func (s *Scheduler) RunEvery(ctx context.Context, interval time.Duration, name string, fn func(ctx context.Context) error) {
	log := logger.FromContext(ctx)

	var running atomic.Bool

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !running.CompareAndSwap(false, true) {
					log.Warnw("previous run still in progress - skipping", "job", name)
					continue
				}
				s.wg.Add(1)
				go func() {
					defer s.wg.Done()
					defer running.Store(false)
					if err := fn(ctx); err != nil {
						log.Errorw("job failed", "job", name, "error", err)
					}
				}()
			}
		}
	}()
}

// RunDailyAt starts a goroutine firing fn once per day at the given UTC
// hour until the context is cancelled.
func (s *Scheduler) RunDailyAt(ctx context.Context, hourUTC int, name string, fn func(ctx context.Context) error) {
	log := logger.FromContext(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			timer := time.NewTimer(time.Until(nextDaily(time.Now().UTC(), hourUTC)))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if err := fn(ctx); err != nil {
					log.Errorw("job failed", "job", name, "error", err)
				}
			}
		}
	}()
}

// Wait blocks until all job goroutines have exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func nextDaily(now time.Time, hourUTC int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
