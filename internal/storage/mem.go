package storage

import "sync"

// MemKV is an in-memory slot store. Used in tests and when the server
// runs without a storage path configured.
type MemKV struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{slots: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}

func (m *MemKV) Close() error {
	return nil
}
