package engagement

import (
	"context"
	"strings"
	"sync"
	"time"
)

type Kind string

const (
	// KindOpened is recorded when the client reports a click on the task action.
	KindOpened Kind = "opened"
	// KindVisited is recorded by the tracked redirect, i.e. observed by the server itself.
	KindVisited Kind = "visited"
)

type Key struct {
	Wallet     string
	CampaignID string
	TaskID     string
}

func (k Key) String() string {
	return strings.Join([]string{k.Wallet, k.CampaignID, k.TaskID}, ":")
}

// Store keeps the first time each engagement kind was seen for a key.
type Store interface {
	// Record is first-write-wins and returns the stored timestamp.
	Record(ctx context.Context, key Key, kind Kind, at time.Time) (time.Time, error)
	Get(ctx context.Context, key Key, kind Kind) (time.Time, bool, error)
}

type MemoryStore struct {
	mu   sync.RWMutex
	seen map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]time.Time)}
}

func (m *MemoryStore) Record(_ context.Context, key Key, kind Kind, at time.Time) (time.Time, error) {
	k := string(kind) + "|" + key.String()
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.seen[k]; ok {
		return prev, nil
	}
	m.seen[k] = at
	return at, nil
}

func (m *MemoryStore) Get(_ context.Context, key Key, kind Kind) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	at, ok := m.seen[string(kind)+"|"+key.String()]
	return at, ok, nil
}
