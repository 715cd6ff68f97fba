package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newWithClock(Config{
		RecordLength:     4,
		Timeout:          time.Second,
		Percentile:       0.5,
		RecoveryRequests: 2,
	}, clock.now)

	for i := 0; i < 4; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	clock.t = clock.t.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailure(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := newWithClock(Config{
		RecordLength:     2,
		Timeout:          time.Second,
		Percentile:       0.5,
		RecoveryRequests: 1,
	}, clock.now)

	errService := errors.New("boom")
	require.Error(t, cb.Call(func() error { return errService }))
	require.Equal(t, Open, cb.State())

	clock.t = clock.t.Add(2 * time.Second)
	require.Error(t, cb.Call(func() error { return errService }))
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(func() error { return nil }), ErrOpenCB)

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.Equal(t, "CLOSED", cb.State().String())
}
