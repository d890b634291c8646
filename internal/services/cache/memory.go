package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultTTL applies when Set is called without a TTL
const DefaultTTL = 5 * time.Minute

// MemoryCache is a size-bounded in-process cache with least-recently-used eviction
type MemoryCache struct {
	mu         sync.Mutex
	items      map[string]*list.Element
	order      *list.List // front is most recently used
	maxBytes   int64
	size       int64
	defaultTTL time.Duration
	stats      Stats
	now        func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

type memoryEntry struct {
	key    string
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes. maxSizeMB <= 0 means unbounded.
func NewMemoryCache(maxSizeMB int64, defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	mc := &MemoryCache{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		maxBytes:   maxSizeMB * 1024 * 1024,
		defaultTTL: defaultTTL,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweep(time.Minute)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	el, ok := mc.items[key]
	if !ok {
		mc.stats.Misses++
		return nil, false
	}

	entry := el.Value.(*memoryEntry)
	if mc.now().After(entry.expiry) {
		mc.remove(el)
		mc.stats.Misses++
		return nil, false
	}

	mc.order.MoveToFront(el)
	mc.stats.Hits++
	return entry.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}

	entry := &memoryEntry{
		key:    key,
		value:  value,
		expiry: mc.now().Add(ttl),
		size:   int64(len(key) + len(value)),
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.items[key]; ok {
		mc.remove(el)
	}

	// Entries larger than the whole cache are not stored
	if mc.maxBytes > 0 && entry.size > mc.maxBytes {
		return nil
	}

	mc.items[key] = mc.order.PushFront(entry)
	mc.size += entry.size
	mc.stats.Sets++

	for mc.maxBytes > 0 && mc.size > mc.maxBytes {
		oldest := mc.order.Back()
		if oldest == nil {
			break
		}
		mc.remove(oldest)
		mc.stats.Evictions++
	}
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	if el, ok := mc.items[key]; ok {
		mc.remove(el)
	}
	mc.mu.Unlock()
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(_ context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*list.Element)
	mc.order.Init()
	mc.size = 0
	mc.mu.Unlock()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	stats := mc.stats
	stats.Size = mc.size
	stats.MaxSize = mc.maxBytes
	return stats
}

// Close stops the expiry sweeper. It is safe to call more than once.
func (mc *MemoryCache) Close() error {
	mc.once.Do(func() {
		close(mc.stopCh)
		mc.wg.Wait()
	})
	return nil
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpired() {
	now := mc.now()
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for el := mc.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*memoryEntry).expiry) {
			mc.remove(el)
			mc.stats.Evictions++
		}
		el = prev
	}
}

// remove unlinks an entry. Callers hold mu.
func (mc *MemoryCache) remove(el *list.Element) {
	entry := mc.order.Remove(el).(*memoryEntry)
	delete(mc.items, entry.key)
	mc.size -= entry.size
}
