package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_RunEvery_skipsOverlappingRuns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var active int32
	var maxActive int32
	var runs int32

	s := New()
	s.RunEvery(ctx, 10*time.Millisecond, "slow-job", func(ctx context.Context) error {
		current := atomic.AddInt32(&active, 1)
		for {
			observed := atomic.LoadInt32(&maxActive)
			if current <= observed || atomic.CompareAndSwapInt32(&maxActive, observed, current) {
				break
			}
		}
		time.Sleep(35 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		atomic.AddInt32(&runs, 1)
		return nil
	})

	time.Sleep(200 * time.Millisecond)
	cancel()
	s.Wait()

	require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(2))
	require.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestScheduler_RunEvery_stopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := New()
	s.RunEvery(ctx, time.Hour, "idle-job", func(ctx context.Context) error {
		t.Error("job should never fire")
		return nil
	})

	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func Test_nextDaily(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	require.Equal(t,
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		nextDaily(now, 12),
	)
	require.Equal(t,
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		nextDaily(now, 9),
	)
	require.Equal(t,
		time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		nextDaily(now, 10),
	)
}
