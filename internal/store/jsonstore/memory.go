package jsonstore

import "sync"

// Memory keeps slots in a map. Used for --ephemeral runs and tests.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.slots[key]
	if !ok || len(b) == 0 {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *Memory) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := make([]byte, len(data))
	copy(b, data)
	m.slots[key] = b
	return nil
}
