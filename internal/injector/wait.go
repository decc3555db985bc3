package injector

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Slot holds a value that another party publishes asynchronously, such as
// a global the host page or a vendor script defines once it has loaded.
type Slot[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

// Set publishes v.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.set = true
}

// Lookup returns the published value, if any.
func (s *Slot[T]) Lookup() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.set
}

// WaitForReady polls s every interval until a value is published or ctx ends.
func (s *Slot[T]) WaitForReady(ctx context.Context, interval time.Duration) (T, error) {
	return WaitFor(ctx, interval, s.Lookup)
}

// WaitFor calls check immediately and then every interval until it reports
// ready or ctx is done.
func WaitFor[T any](ctx context.Context, interval time.Duration, check func() (T, bool)) (T, error) {
	if v, ok := check(); ok {
		return v, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("waiting for dependency: %w", ctx.Err())
		case <-ticker.C:
			if v, ok := check(); ok {
				return v, nil
			}
		}
	}
}

// withTimeout bounds ctx by d; zero means wait for as long as ctx allows.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
