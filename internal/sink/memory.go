package sink

import (
	"sync"

	"github.com/specialistvlad/configsnap/internal/snapshot"
)

// Memory is a Sink that keeps artifacts in registration order.
type Memory struct {
	mu      sync.RWMutex
	order   []string
	sources map[string]string
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{sources: make(map[string]string)}
}

// AddSource implements Sink. Re-registering a hint replaces its text.
func (m *Memory) AddSource(hint, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sources[hint]; !ok {
		m.order = append(m.order, hint)
	}
	m.sources[hint] = text
	return nil
}

// Get returns the text registered under hint.
func (m *Memory) Get(hint string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.sources[hint]
	return text, ok
}

// Hints returns the registered hints in registration order.
func (m *Memory) Hints() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Snapshots returns every artifact in registration order.
func (m *Memory) Snapshots() []snapshot.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]snapshot.Snapshot, 0, len(m.order))
	for _, hint := range m.order {
		out = append(out, snapshot.Snapshot{Hint: hint, Text: m.sources[hint]})
	}
	return out
}

// Reset drops every artifact.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
	m.sources = make(map[string]string)
}
