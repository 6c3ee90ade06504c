package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/hcalendar/pkg/tools/await"
)

// New creates a throttler that runs at most one action per interval.
// Up to capacity actions may wait in the queue.
func New(interval time.Duration, capacity int) *Throttler {
	return &Throttler{
		todo:     make(chan func(), capacity),
		stop:     make(chan struct{}),
		interval: interval,
	}
}

type Throttler struct {
	todo     chan func()
	stop     chan struct{}
	stopOnce sync.Once
	interval time.Duration
}

// Run starts the worker and returns immediately. The worker stops when ctx
// is done or Stop is called.
func (t *Throttler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-t.stop:
		case <-ctx.Done():
		}
		cancel()
	}()

	go func() {
		defer cancel()

		tick := await.Tick(t.interval)
		defer tick.Stop()

		for {
			next := await.FromChan[func()](t.todo)
			if !next.Await(ctx) {
				return
			}
			v, _ := next.Value()
			v.(func())()

			if !tick.Await(ctx) {
				return
			}
		}
	}()
	return nil
}

// Stop may be called more than once.
func (t *Throttler) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Do enqueues action. It reports false if ctx was done before the queue had
// room for it.
func (t *Throttler) Do(ctx context.Context, action func()) bool {
	select {
	case <-t.stop:
		return false
	default:
	}
	return await.ToChan[func()](t.todo, action).Await(ctx)
}
