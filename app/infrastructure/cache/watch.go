package cache

import (
	"context"
	"errors"
)

// Watch keeps a view of key current until ctx is done. onChange receives the
// initial value, every later write to the key, and fetch errors. An
// invalidation of the key triggers a refetch. onChange is never called
// concurrently.
func Watch[T any](ctx context.Context, c *QueryCache, key Key, fetch func(ctx context.Context) (T, error), onChange func(value T, err error)) {
	updated := make(chan struct{}, 1)
	invalidated := make(chan struct{}, 1)
	signal := func(ch chan struct{}) {
		select {
		case ch <- struct{}{}:
		default:
		}
	}

	unsubscribe := c.Subscribe(key, func(ev Event) {
		if ev.Key != key {
			return
		}
		switch ev.Type {
		case EventUpdated:
			signal(updated)
		case EventInvalidated:
			signal(invalidated)
		}
	})
	defer unsubscribe()

	refetch := func() {
		value, err := Ensure(ctx, c, key, fetch)
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, ErrFetchCancelled) {
				var zero T
				onChange(zero, err)
			}
			return
		}
		// a completed fetch also raises EventUpdated; drain it so the value is delivered once
		select {
		case <-updated:
		default:
		}
		onChange(value, nil)
	}

	refetch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-invalidated:
			refetch()
		case <-updated:
			if value, ok := Get[T](c, key); ok {
				onChange(value, nil)
			}
		}
	}
}
