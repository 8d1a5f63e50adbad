package persist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"cafe-admin-api/models"
)

// MemoryStore is a process-local KV and audit trail
type MemoryStore struct {
	entries map[string][]byte
	history []models.OrderStatusHistory
	mutex   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string, v any) (bool, error) {
	m.mutex.RLock()
	raw, ok := m.entries[key]
	m.mutex.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.mutex.Lock()
	m.entries[key] = raw
	m.mutex.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	delete(m.entries, key)
	m.mutex.Unlock()
	return nil
}

// Keys lists stored keys; used by tests
func (m *MemoryStore) Keys() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

func (m *MemoryStore) RecordStatusChange(_ context.Context, h *models.OrderStatusHistory) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	h.ID = uint(len(m.history) + 1)
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	m.history = append(m.history, *h)
	return nil
}

func (m *MemoryStore) StatusHistory(_ context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	out := []models.OrderStatusHistory{}
	for _, h := range m.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}
