package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// SnapshotStore is the durable key-value contract the cart persists through.
// Get reports absence through its second return value rather than an error.
type SnapshotStore interface {
	Get(c context.Context, key string) (value string, ok bool, err error)
	Set(c context.Context, key string, value string) error
	Del(c context.Context, key string) error
}

func encodeSnapshot(items []LineItem) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeSnapshot treats malformed data as an empty cart. A corrupt snapshot is
// recovered from, never surfaced.
func decodeSnapshot(value string) []LineItem {
	items := []LineItem{}
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return []LineItem{}
	}
	return items
}

// MemorySnapshotStore is an in-process SnapshotStore used by tests.
type MemorySnapshotStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{values: map[string]string{}}
}

func (s *MemorySnapshotStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemorySnapshotStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemorySnapshotStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
