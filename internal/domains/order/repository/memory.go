package repository

import (
	"context"
	"sync"
	"time"

	"heritage-backend/internal/domains/order/model"
)

type memoryEntry struct {
	order     *model.Order
	expiresAt time.Time
}

// MemoryRepository is the default handoff store: a TTL map with a mutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryRepository creates an in-memory order handoff store
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (r *MemoryRepository) Get(_ context.Context, orderID string) (*model.Order, error) {
	r.mu.RLock()
	entry, exists := r.entries[orderID]
	r.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.order, nil
}

func (r *MemoryRepository) Save(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[order.OrderID] = memoryEntry{
		order:     order,
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, orderID)
	return nil
}

// SweepExpired drops entries past their TTL and returns how many were
// removed. The container's janitor calls this periodically.
func (r *MemoryRepository) SweepExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for orderID, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, orderID)
			removed++
		}
	}
	return removed
}
