package mutation

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

// Coordinator runs mutations against the backend and keeps the query cache in
// step with them.
type Coordinator struct {
	cache    *cache.QueryCache
	notifier notice.Notifier

	mu      sync.Mutex
	pending map[string]int
}

func NewCoordinator(queryCache *cache.QueryCache, notifier notice.Notifier) *Coordinator {
	return &Coordinator{
		cache:    queryCache,
		notifier: notifier,
		pending:  make(map[string]int),
	}
}

// Pending reports how many mutations on resource are in flight.
func (c *Coordinator) Pending(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[resource]
}

func (c *Coordinator) PendingAll() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.pending))
	for resource, n := range c.pending {
		out[resource] = n
	}
	return out
}

func (c *Coordinator) begin(resource string) func() {
	c.mu.Lock()
	c.pending[resource]++
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.pending[resource]--; c.pending[resource] <= 0 {
			delete(c.pending, resource)
		}
	}
}

func (c *Coordinator) fail(resource string, err error) {
	logger.GetLogger().WithFields(logrus.Fields{"resource": resource}).Warnf("mutation failed: %v", err)
	c.notifier.Error(common.UserMessage(err))
}

// Optimistic is a mutation whose expected outcome is written to the cache
// before the backend confirms it.
type Optimistic[T any, R any] struct {
	Key cache.Key
	// Apply derives the speculative value. It must return a new value and
	// leave old untouched; it runs only when the key holds a value.
	Apply func(old T) T
	// OnApplied runs synchronously right after the speculative write.
	OnApplied func(updated T)
	Request   func(ctx context.Context) (R, error)
}

// RunOptimistic cancels in-flight fetches for the key, snapshots it, writes
// the speculative value, sends the request, restores the snapshot on failure
// and finally invalidates the key's resource.
func RunOptimistic[T any, R any](ctx context.Context, c *Coordinator, m Optimistic[T, R]) (R, error) {
	done := c.begin(m.Key.Resource)
	defer done()
	defer c.cache.Invalidate(m.Key.Bare())

	c.cache.Cancel(m.Key)
	snapshot := c.cache.Snapshot(m.Key)

	var updated T
	applied := false
	if m.Apply != nil {
		applied = cache.Update(c.cache, m.Key, func(old T) T {
			updated = m.Apply(old)
			return updated
		})
	}
	if applied && m.OnApplied != nil {
		m.OnApplied(updated)
	}

	result, err := m.Request(ctx)
	if err != nil {
		if applied {
			c.cache.Restore(snapshot)
		}
		c.fail(m.Key.Resource, err)
		return result, err
	}
	return result, nil
}

// Plain is a mutation that only touches the cache once the backend confirms it.
type Plain[R any] struct {
	Resource       string
	Invalidate     []cache.Key
	Request        func(ctx context.Context) (R, error)
	SuccessMessage string
}

func RunPlain[R any](ctx context.Context, c *Coordinator, m Plain[R]) (R, error) {
	done := c.begin(m.Resource)
	defer done()

	result, err := m.Request(ctx)
	if err != nil {
		c.fail(m.Resource, err)
		return result, err
	}
	invalidate := m.Invalidate
	if len(invalidate) == 0 {
		invalidate = []cache.Key{cache.ResourceKey(m.Resource)}
	}
	c.cache.Invalidate(invalidate...)
	if m.SuccessMessage != "" {
		c.notifier.Success(m.SuccessMessage)
	}
	return result, nil
}
