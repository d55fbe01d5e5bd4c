// Package cache provides an in-memory, size-bounded implementation of
// jobpost.ResultCache with LRU eviction and optional TTL expiry.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/fwojciec/jobpost"
)

// Ensure LRU implements jobpost.ResultCache at compile time.
var _ jobpost.ResultCache = (*LRU)(nil)

// DefaultMaxSize bounds the number of cached extraction results.
const DefaultMaxSize = 1000

type entry struct {
	key      string
	job      *jobpost.Job
	storedAt time.Time
}

// LRU is a thread-safe bounded cache. Entries past the TTL are dropped
// lazily on access; a TTL of zero disables expiry.
type LRU struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	order   *list.List // front = most recently used
	items   map[string]*list.Element
	now     func() time.Time
}

// NewLRU creates a cache holding at most maxSize entries. maxSize <= 0
// means DefaultMaxSize.
func NewLRU(maxSize int, ttl time.Duration) *LRU {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &LRU{
		maxSize: maxSize,
		ttl:     ttl,
		order:   list.New(),
		items:   make(map[string]*list.Element),
		now:     time.Now,
	}
}

// Get returns the cached Job for key. Expired entries count as misses and
// are removed.
func (c *LRU) Get(_ context.Context, key string) (*jobpost.Job, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	ent := el.Value.(*entry)
	if c.ttl > 0 && c.now().Sub(ent.storedAt) > c.ttl {
		c.order.Remove(el)
		delete(c.items, key)
		return nil, false, nil
	}
	c.order.MoveToFront(el)
	return ent.job.Clone(), true, nil
}

// Put stores the Job under key, evicting the least recently used entry
// when the cache is full. The job is copied on the way in so later caller
// mutations cannot leak into the cache.
func (c *LRU) Put(_ context.Context, key string, job *jobpost.Job) error {
	if job == nil {
		return jobpost.Errorf(jobpost.EINVALID, "nil job")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.job = job.Clone()
		ent.storedAt = c.now()
		c.order.MoveToFront(el)
		return nil
	}

	if c.order.Len() >= c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}

	c.items[key] = c.order.PushFront(&entry{key: key, job: job.Clone(), storedAt: c.now()})
	return nil
}

// Len returns the number of entries currently held, including any that
// have expired but not yet been evicted.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
