package game

import "sync"

// BestScoreKey is the store key of the persisted best score.
const BestScoreKey = "chromatic-surge-best"

// Store is a best-effort integer key-value store.
type Store interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get returns the value for key, or 0 when unset.
func (m *MemoryStore) Get(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
