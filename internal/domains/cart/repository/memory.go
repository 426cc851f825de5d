package repository

import (
	"context"
	"sync"
	"time"

	"heritage-backend/internal/domains/cart/model"
)

// memoryEntry wraps a cart with its expiry
type memoryEntry struct {
	cart      *model.Cart
	expiresAt time.Time
}

// MemoryRepository is the default cart store: a TTL map guarded by a
// mutex. Each session owns its cart exclusively, the lock only protects
// the map against concurrent sessions.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryRepository creates an in-memory cart store with the given TTL
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (r *MemoryRepository) Get(_ context.Context, sessionID string) (*model.Cart, error) {
	r.mu.RLock()
	entry, exists := r.entries[sessionID]
	r.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.cart, nil
}

func (r *MemoryRepository) Save(_ context.Context, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[cart.SessionID] = memoryEntry{
		cart:      cart,
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}

// SweepExpired drops entries past their TTL and returns how many were
// removed. The container's janitor calls this periodically.
func (r *MemoryRepository) SweepExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for sessionID, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, sessionID)
			removed++
		}
	}
	return removed
}
