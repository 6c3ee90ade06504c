package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottler_Do(t *testing.T) {
	th := New(time.Millisecond, 4)
	require.NoError(t, th.Run(context.Background()))
	defer th.Stop()

	done := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		require.True(t, th.Do(context.Background(), func() { done <- i }))
	}

	for i := 0; i < 3; i++ {
		select {
		case got := <-done:
			require.Equal(t, i, got)
		case <-time.After(time.Second):
			t.Fatal("action was not run")
		}
	}
}

func TestThrottler_interval(t *testing.T) {
	const interval = 20 * time.Millisecond

	th := New(interval, 2)
	require.NoError(t, th.Run(context.Background()))
	defer th.Stop()

	stamps := make(chan time.Time, 2)
	for i := 0; i < 2; i++ {
		require.True(t, th.Do(context.Background(), func() { stamps <- time.Now() }))
	}

	first, second := <-stamps, <-stamps
	require.GreaterOrEqual(t, second.Sub(first), interval/2)
}

func TestThrottler_Stop(t *testing.T) {
	th := New(time.Millisecond, 0)
	require.NoError(t, th.Run(context.Background()))
	th.Stop()

	require.False(t, th.Do(context.Background(), func() {}))
	require.NotPanics(t, th.Stop)
}

func TestThrottler_Do_canceled(t *testing.T) {
	// nobody drains the queue
	th := New(time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, th.Do(ctx, func() {}))
}
