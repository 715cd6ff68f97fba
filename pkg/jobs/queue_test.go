package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestQueue_EnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", Config{Workers: 1}, zaptest.NewLogger(t))
	err := q.Enqueue(Job{Run: func(context.Context) error { return nil }})
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestQueue_RunsJobs(t *testing.T) {
	q := NewQueue("test", Config{Workers: 2, BufferSize: 8}, zaptest.NewLogger(t))
	q.Start(context.Background())
	defer q.Stop()

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(Job{Type: "count", Run: func(context.Context) error {
			done.Add(1)
			return nil
		}}))
	}
	require.Eventually(t, func() bool { return done.Load() == 5 }, time.Second, 5*time.Millisecond)
}

func TestQueue_RetriesFailedJob(t *testing.T) {
	q := NewQueue("test", Config{Workers: 1, MaxRetries: 2, RetryDelay: time.Millisecond}, zaptest.NewLogger(t))
	q.Start(context.Background())
	defer q.Stop()

	var attempts atomic.Int32
	require.NoError(t, q.Enqueue(Job{Type: "flaky", Run: func(context.Context) error {
		if attempts.Add(1) < 3 {
			return errors.New("not yet")
		}
		return nil
	}}))
	require.Eventually(t, func() bool { return attempts.Load() == 3 }, time.Second, 5*time.Millisecond)
}

func TestQueue_EnqueueWhenFull(t *testing.T) {
	q := NewQueue("test", Config{Workers: 1, BufferSize: 1}, zaptest.NewLogger(t))
	q.Start(context.Background())
	defer q.Stop()

	running, release := make(chan struct{}), make(chan struct{})
	require.NoError(t, q.Enqueue(Job{Type: "block", Run: func(ctx context.Context) error {
		close(running)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}}))
	<-running

	var done atomic.Int32
	count := Job{Type: "count", Run: func(context.Context) error {
		done.Add(1)
		return nil
	}}
	require.NoError(t, q.Enqueue(count))
	require.ErrorIs(t, q.Enqueue(count), ErrQueueFull)

	close(release)
	require.Eventually(t, func() bool { return done.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, q.Enqueue(count))
	require.Eventually(t, func() bool { return done.Load() == 2 }, time.Second, 5*time.Millisecond)
}
