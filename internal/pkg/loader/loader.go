// Package loader holds lazily initialised, process-wide resources behind an
// explicit owner instead of package-level variables.
//
// A Loader runs its load function at most once per generation: concurrent
// Acquire calls share one in-flight load, a successful result is reused until
// Reset, and a failed load is not remembered so the next Acquire retries.
package loader

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Func produces the resource. It receives a context detached from the
// cancellation of the caller that happened to trigger the load.
type Func[T any] func(ctx context.Context) (T, error)

type Loader[T any] struct {
	load  Func[T]
	group singleflight.Group

	mu         sync.RWMutex
	value      T
	ready      bool
	generation uint64
}

func New[T any](load Func[T]) *Loader[T] {
	return &Loader[T]{load: load}
}

// Acquire returns the resource, loading it if it is not ready yet.
func (l *Loader[T]) Acquire(ctx context.Context) (T, error) {
	l.mu.RLock()
	value, ready, gen := l.value, l.ready, l.generation
	l.mu.RUnlock()
	if ready {
		return value, nil
	}

	ch := l.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		loaded, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if l.generation == gen {
			l.value = loaded
			l.ready = true
		}
		l.mu.Unlock()
		return loaded, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Ready reports whether a loaded value is cached.
func (l *Loader[T]) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

// Reset drops the cached value. A load already in flight finishes for its
// waiters but is not cached.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	l.value = zero
	l.ready = false
	l.generation++
}
