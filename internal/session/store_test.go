package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/hcalendar/pkg/logger"
)

type counter struct {
	key string
	n   int
}

func newCounterStore(cfg Config) (*Store[*counter], *int) {
	created := 0
	s := NewStore(cfg, func(key string) (*counter, error) {
		created++
		return &counter{key: key}, nil
	}, logger.NewStub())
	return s, &created
}

func TestStore_Do(t *testing.T) {
	s, created := newCounterStore(Config{})

	for i := 0; i < 3; i++ {
		err := s.Do("a", func(c *counter) error {
			require.Equal(t, "a", c.key)
			c.n++
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.Do("b", func(c *counter) error { return nil }))
	require.Equal(t, 2, *created)
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Do("a", func(c *counter) error {
		require.Equal(t, 3, c.n)
		return nil
	}))
}

func TestStore_Do_errors(t *testing.T) {
	fail := errors.New("mock")

	s := NewStore(Config{}, func(key string) (int, error) {
		return 0, fail
	}, logger.NewStub())

	err := s.Do("a", func(int) error { return nil })
	require.ErrorIs(t, err, fail)
	require.Equal(t, 0, s.Len())

	ok, _ := newCounterStore(Config{})
	err = ok.Do("a", func(*counter) error { return fail })
	require.ErrorIs(t, err, fail)
}

func TestStore_Do_serialized(t *testing.T) {
	s, _ := newCounterStore(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do("shared", func(c *counter) error {
				c.n++
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do("shared", func(c *counter) error {
		require.Equal(t, 50, c.n)
		return nil
	}))
}

func TestStore_sweep(t *testing.T) {
	s, created := newCounterStore(Config{IdleTTL: time.Minute})

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Do("old", func(*counter) error { return nil }))
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Do("fresh", func(*counter) error { return nil }))

	require.Equal(t, 1, s.sweep())
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Do("old", func(*counter) error { return nil }))
	require.Equal(t, 3, *created)

	require.True(t, s.Drop("old"))
	require.False(t, s.Drop("old"))
}

func TestStore_sweep_concurrentDo(t *testing.T) {
	s, _ := newCounterStore(Config{IdleTTL: time.Nanosecond})

	stop := make(chan struct{})
	swept := make(chan struct{})
	go func() {
		defer close(swept)
		for {
			select {
			case <-stop:
				return
			default:
				s.sweep()
			}
		}
	}()

	var wg sync.WaitGroup
	var evicted atomic.Int64
	for _, key := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20000; i++ {
				_ = s.Do(key, func(c *counter) error {
					s.mu.Lock()
					e, ok := s.entries[key]
					s.mu.Unlock()
					if !ok || e.value != c {
						evicted.Add(1)
					}
					return nil
				})
			}
		}()
	}
	wg.Wait()

	close(stop)
	<-swept

	require.Zero(t, evicted.Load())
}
