package cache

import (
	"context"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

var _ services.TranscriptCache = (*MemoryStore)(nil)

// MemoryStore is a simple in-memory transcript cache with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store and starts its janitor
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go store.cleanupExpired(cleanupInterval)
	}

	return store
}

// Set stores a transcript with expiration. A non-positive ttl keeps the
// entry until Close.
func (ms *MemoryStore) Set(_ context.Context, key, transcript string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item := &memoryItem{value: transcript}
	if ttl > 0 {
		item.expireTime = ms.now().Add(ttl)
	}
	ms.items[key] = item
	return nil
}

// Get retrieves a transcript by key
func (ms *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || item.expired(ms.now()) {
		return "", false, nil
	}
	return item.value, true, nil
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// Close stops the janitor goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.stop) })
	return nil
}

func (item *memoryItem) expired(now time.Time) bool {
	return !item.expireTime.IsZero() && now.After(item.expireTime)
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := ms.now()
			for key, item := range ms.items {
				if item.expired(now) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}
