package store

import "sync"

// MemoryBackend keeps values in memory. Nothing survives the process.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get implements Backend.
func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements Backend.
func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}
