package ledger

import (
	"context"
	"sync"
	"time"
)

type Store interface {
	// Completed returns task id -> completion time for the key.
	Completed(ctx context.Context, key Key) (map[string]time.Time, error)
	// Add reports whether the task was newly added.
	Add(ctx context.Context, key Key, taskID string, at time.Time) (bool, error)
	Reset(ctx context.Context, key Key) error
	Wallets(ctx context.Context, campaignID string) ([]string, error)
}

type MemoryStore struct {
	mu   sync.RWMutex
	sets map[Key]map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[Key]map[string]time.Time)}
}

func (m *MemoryStore) Completed(_ context.Context, key Key) (map[string]time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]time.Time, len(m.sets[key]))
	for id, at := range m.sets[key] {
		out[id] = at
	}
	return out, nil
}

func (m *MemoryStore) Add(_ context.Context, key Key, taskID string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]time.Time)
		m.sets[key] = set
	}
	if _, done := set[taskID]; done {
		return false, nil
	}
	set[taskID] = at
	return true, nil
}

func (m *MemoryStore) Reset(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, key)
	return nil
}

func (m *MemoryStore) Wallets(_ context.Context, campaignID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for k, set := range m.sets {
		if k.CampaignID == campaignID && len(set) > 0 {
			out = append(out, k.Wallet)
		}
	}
	return out, nil
}
