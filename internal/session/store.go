package session

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/hcalendar/pkg/errors"
	"github.com/nikmy/hcalendar/pkg/logger"
)

// Factory creates the value for a key on its first use.
type Factory[T any] func(key string) (T, error)

type Config struct {
	IdleTTL       time.Duration `yaml:"idleTTL"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
}

func NewStore[T any](cfg Config, factory Factory[T], log logger.Logger) *Store[T] {
	return &Store[T]{
		entries: make(map[string]*entry[T]),
		factory: factory,
		cfg:     cfg,
		now:     time.Now,
		logger:  log.With("sessions"),
	}
}

// Store gives one owner at a time access to a value per key. Values are
// never shared between keys and are dropped after IdleTTL without use.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]

	factory Factory[T]
	cfg     Config
	now     func() time.Time
	logger  logger.Logger
}

// refs and touched are guarded by Store.mu, value by entry.mu.
type entry[T any] struct {
	mu      sync.Mutex
	value   T
	refs    int
	touched time.Time
}

// Do runs fn with exclusive access to the value stored under key.
func (s *Store[T]) Do(key string, fn func(T) error) error {
	e, err := s.acquire(key)
	if err != nil {
		return err
	}
	defer s.release(e)

	return fn(e.value)
}

func (s *Store[T]) acquire(key string) (*entry[T], error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		value, err := s.factory(key)
		if err != nil {
			s.mu.Unlock()
			return nil, errors.WrapFailf(err, "create session %q", key)
		}
		e = &entry[T]{value: value}
		s.entries[key] = e
		s.logger.Debugf("session %q created", key)
	}
	e.refs++
	e.touched = s.now()
	s.mu.Unlock()

	e.mu.Lock()
	return e, nil
}

func (s *Store[T]) release(e *entry[T]) {
	s.mu.Lock()
	e.refs--
	e.touched = s.now()
	s.mu.Unlock()

	e.mu.Unlock()
}

func (s *Store[T]) Drop(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run evicts idle sessions until ctx is done. It is a no-op without IdleTTL.
func (s *Store[T]) Run(ctx context.Context) error {
	if s.cfg.IdleTTL <= 0 {
		return nil
	}

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = s.cfg.IdleTTL
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-ctx.Done():
			return nil
		}
	}
}

// sweep never evicts an entry that is held or waited for by Do.
func (s *Store[T]) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.cfg.IdleTTL)

	evicted := 0
	for key, e := range s.entries {
		if e.refs == 0 && e.touched.Before(deadline) {
			delete(s.entries, key)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Infof("evicted %d idle sessions", evicted)
	}
	return evicted
}
