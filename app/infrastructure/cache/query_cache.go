package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

// ErrFetchCancelled is returned to waiters of a fetch that was superseded
// while no cached value exists to hand out instead.
var ErrFetchCancelled = errors.New("cache: fetch cancelled")

type Status string

const (
	StatusEmpty    Status = "empty"
	StatusFresh    Status = "fresh"
	StatusStale    Status = "stale"
	StatusFetching Status = "fetching"
)

type State struct {
	Key       Key
	Value     any
	HasValue  bool
	Status    Status
	UpdatedAt time.Time
}

type EventType string

const (
	EventUpdated     EventType = "updated"
	EventInvalidated EventType = "invalidated"
	EventRemoved     EventType = "removed"
)

type Event struct {
	Type EventType
	Key  Key
}

// Fetcher loads the value for one key from the backend.
type Fetcher func(ctx context.Context) (any, error)

// Snapshot is the pre-mutation state of one key, used for rollback.
type Snapshot struct {
	Key      Key
	Value    any
	HasValue bool
}

type entry struct {
	value     any
	hasValue  bool
	stale     bool
	fetching  bool
	updatedAt time.Time
	// gen is bumped whenever the in-flight fetch must no longer write.
	gen    uint64
	cancel context.CancelFunc
}

type subscription struct {
	prefix Key
	fn     func(Event)
}

// QueryCache is the process-wide store of server state. Entries never expire
// on a timer; they go stale only through Invalidate.
type QueryCache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	subs    map[uint64]subscription
	nextSub uint64

	flights singleflight.Group

	persister  CacheService
	persistTTL time.Duration
	now        func() time.Time
}

func NewQueryCache(persister CacheService) *QueryCache {
	return &QueryCache{
		entries:    make(map[Key]*entry),
		subs:       make(map[uint64]subscription),
		persister:  persister,
		persistTTL: environment_variables.EnvironmentVariables.CACHE_PERSIST_TTL,
		now:        time.Now,
	}
}

// Get returns the cached value for key, fresh or stale.
func (c *QueryCache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return nil, false
	}
	return e.value, true
}

func (c *QueryCache) State(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return State{Key: key, Status: StatusEmpty}
	}
	return State{
		Key:       key,
		Value:     e.value,
		HasValue:  e.hasValue,
		Status:    e.status(),
		UpdatedAt: e.updatedAt,
	}
}

func (e *entry) status() Status {
	switch {
	case e.fetching:
		return StatusFetching
	case !e.hasValue:
		return StatusEmpty
	case e.stale:
		return StatusStale
	default:
		return StatusFresh
	}
}

// Ensure returns the fresh cached value for key or fetches it. Concurrent
// callers for the same key share one outstanding fetch. The fetch runs
// detached from ctx so one waiter giving up does not fail the others.
func (c *QueryCache) Ensure(ctx context.Context, key Key, fetch Fetcher) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.hasValue && !e.stale {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	ch := c.flights.DoChan(key.String(), func() (any, error) {
		return c.fetch(ctx, key, fetch)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (c *QueryCache) fetch(parent context.Context, key Key, fetch Fetcher) (any, error) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	defer cancel()

	c.mu.Lock()
	e := c.entryLocked(key)
	if e.hasValue && !e.stale {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	e.fetching = true
	e.cancel = cancel
	gen := e.gen
	c.mu.Unlock()

	value, err := fetch(ctx)

	c.mu.Lock()
	current, ok := c.entries[key]
	if !ok || current != e || current.gen != gen {
		var latest any
		hasLatest := ok && current.hasValue
		if hasLatest {
			latest = current.value
		}
		c.mu.Unlock()
		logger.GetLogger().WithFields(logrus.Fields{"key": key.String()}).Debug("cache: discarded superseded fetch result")
		if hasLatest {
			return latest, nil
		}
		return nil, ErrFetchCancelled
	}
	e.fetching = false
	e.cancel = nil
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	e.value = value
	e.hasValue = true
	e.stale = false
	e.updatedAt = c.now()
	c.mu.Unlock()

	c.persist(key, value)
	c.publish(Event{Type: EventUpdated, Key: key})
	return value, nil
}

// Write replaces the value for key synchronously. Any in-flight fetch for the
// key is superseded and will not overwrite this value.
func (c *QueryCache) Write(key Key, value any) {
	c.mu.Lock()
	e := c.entryLocked(key)
	c.supersedeLocked(key, e)
	e.value = value
	e.hasValue = true
	e.stale = false
	e.updatedAt = c.now()
	c.mu.Unlock()

	c.persist(key, value)
	c.publish(Event{Type: EventUpdated, Key: key})
}

// Update applies fn to the current value atomically. fn reports whether a
// write should happen and must not call back into the cache.
func (c *QueryCache) Update(key Key, fn func(old any, ok bool) (any, bool)) bool {
	c.mu.Lock()
	var old any
	existing, ok := c.entries[key]
	if ok && existing.hasValue {
		old = existing.value
	}
	next, write := fn(old, ok && existing.hasValue)
	if !write {
		c.mu.Unlock()
		return false
	}
	e := c.entryLocked(key)
	c.supersedeLocked(key, e)
	e.value = next
	e.hasValue = true
	e.stale = false
	e.updatedAt = c.now()
	c.mu.Unlock()

	c.persist(key, next)
	c.publish(Event{Type: EventUpdated, Key: key})
	return true
}

// Cancel supersedes the in-flight fetch for key, if any. A late response is
// discarded.
func (c *QueryCache) Cancel(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && e.fetching {
		c.supersedeLocked(key, e)
	}
}

func (c *QueryCache) Snapshot(key Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{Key: key}
	if e, ok := c.entries[key]; ok && e.hasValue {
		snap.Value = e.value
		snap.HasValue = true
	}
	return snap
}

// Restore puts a snapshot back exactly as it was taken.
func (c *QueryCache) Restore(snap Snapshot) {
	if !snap.HasValue {
		c.Remove(snap.Key)
		return
	}
	c.Write(snap.Key, snap.Value)
}

// Invalidate marks every entry under the given prefixes stale, supersedes
// their in-flight fetches and notifies subscribers so watchers refetch.
func (c *QueryCache) Invalidate(prefixes ...Key) {
	c.mu.Lock()
	matched := make([]Key, 0)
	for key, e := range c.entries {
		if !matchesAny(prefixes, key) {
			continue
		}
		c.supersedeLocked(key, e)
		e.stale = true
		matched = append(matched, key)
	}
	c.mu.Unlock()

	c.unpersist(prefixes...)
	for _, key := range matched {
		c.publish(Event{Type: EventInvalidated, Key: key})
	}
}

func (c *QueryCache) Remove(key Key) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		c.supersedeLocked(key, e)
		delete(c.entries, key)
	}
	c.mu.Unlock()

	c.unpersistExact(key)
	if ok {
		c.publish(Event{Type: EventRemoved, Key: key})
	}
}

// Clear drops every entry, including persisted copies.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	removed := make([]Key, 0, len(c.entries))
	for key, e := range c.entries {
		c.supersedeLocked(key, e)
		removed = append(removed, key)
	}
	c.entries = make(map[Key]*entry)
	c.mu.Unlock()

	if c.persister != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := c.persister.DeletePattern(ctx, PersistKeyPrefix+"*"); err != nil {
			logger.GetLogger().Warnf("cache: failed to clear persisted queries: %v", err)
		}
	}
	for _, key := range removed {
		c.publish(Event{Type: EventRemoved, Key: key})
	}
}

// Range calls fn with the state of every cached value under prefix until fn
// returns false. Stale entries are included; callers check Status.
func (c *QueryCache) Range(prefix Key, fn func(State) bool) {
	c.mu.Lock()
	states := make([]State, 0)
	for key, e := range c.entries {
		if e.hasValue && prefix.Matches(key) {
			states = append(states, State{
				Key:       key,
				Value:     e.value,
				HasValue:  true,
				Status:    e.status(),
				UpdatedAt: e.updatedAt,
			})
		}
	}
	c.mu.Unlock()

	for _, st := range states {
		if !fn(st) {
			return
		}
	}
}

// Subscribe registers fn for events on keys under prefix. fn runs on the
// goroutine that caused the event and must not block.
func (c *QueryCache) Subscribe(prefix Key, fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = subscription{prefix: prefix, fn: fn}
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

func (c *QueryCache) publish(ev Event) {
	c.mu.Lock()
	targets := make([]func(Event), 0, len(c.subs))
	for _, sub := range c.subs {
		if sub.prefix.Matches(ev.Key) {
			targets = append(targets, sub.fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
}

func (c *QueryCache) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *QueryCache) supersedeLocked(key Key, e *entry) {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.fetching {
		e.fetching = false
		c.flights.Forget(key.String())
	}
}

func matchesAny(prefixes []Key, key Key) bool {
	for _, p := range prefixes {
		if p.Matches(key) {
			return true
		}
	}
	return false
}

// Ensure is the typed form of QueryCache.Ensure. On a cold key it first tries
// to hydrate from the persister.
func Ensure[T any](ctx context.Context, c *QueryCache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	value, err := c.Ensure(ctx, key, func(ctx context.Context) (any, error) {
		if hydrated, ok := hydrate[T](ctx, c, key); ok {
			return hydrated, nil
		}
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache: %s holds %T, want %T", key, value, zero)
	}
	return typed, nil
}

// Get is the typed form of QueryCache.Get.
func Get[T any](c *QueryCache, key Key) (T, bool) {
	var zero T
	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Update applies apply to the cached value when one of type T exists.
func Update[T any](c *QueryCache, key Key, apply func(old T) T) bool {
	return c.Update(key, func(old any, ok bool) (any, bool) {
		if !ok {
			return nil, false
		}
		typed, ok := old.(T)
		if !ok {
			return nil, false
		}
		return apply(typed), true
	})
}
