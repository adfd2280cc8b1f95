package storage

import (
	"context"
	"sync"
	"time"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// MemoryStore keeps state for the lifetime of the process
type MemoryStore struct {
	states       map[string]domain.SessionState
	history      map[string][]domain.HistoryEntry
	historyLimit int
	mutex        sync.RWMutex
}

var _ StateStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store keeping at most
// historyLimit entries per session. Zero keeps all.
func NewMemoryStore(historyLimit int) *MemoryStore {
	return &MemoryStore{
		states:       make(map[string]domain.SessionState),
		history:      make(map[string][]domain.HistoryEntry),
		historyLimit: historyLimit,
	}
}

func copyState(s domain.SessionState) *domain.SessionState {
	out := s
	if s.LastHouse != nil {
		b := *s.LastHouse
		out.LastHouse = &b
	}
	return &out
}

// LoadState returns a copy of the stored state
func (m *MemoryStore) LoadState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	s, ok := m.states[sessionID]
	if !ok {
		return domain.NewSessionState(sessionID), nil
	}
	return copyState(s), nil
}

// SaveState stores a copy of state
func (m *MemoryStore) SaveState(ctx context.Context, state *domain.SessionState) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	s := copyState(*state)
	s.UpdatedAt = time.Now()
	m.states[state.ID] = *s
	return nil
}

// ResetState deletes the stored state
func (m *MemoryStore) ResetState(ctx context.Context, sessionID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.states, sessionID)
	return nil
}

// AppendHistory records an entry, dropping the oldest beyond the history limit
func (m *MemoryStore) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entries := append(m.history[entry.SessionID], entry)
	if m.historyLimit > 0 && len(entries) > m.historyLimit {
		entries = append([]domain.HistoryEntry(nil), entries[len(entries)-m.historyLimit:]...)
	}
	m.history[entry.SessionID] = entries
	return nil
}

// ListHistory returns entries newest first
func (m *MemoryStore) ListHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entries := m.history[sessionID]
	n := len(entries)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.HistoryEntry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Health always succeeds
func (m *MemoryStore) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
