package store

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/sheepshead/internal/session"
)

// MemoryStore holds the encoded snapshot in memory. It round-trips through
// the same encoding as the other backends.
type MemoryStore struct {
	data   []byte
	saves  int
	logger *log.Logger
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logger: log.New(io.Discard)}
}

func (m *MemoryStore) Load(ctx context.Context) (session.Snapshot, bool, error) {
	if m.data == nil {
		return session.Snapshot{}, false, nil
	}
	snap, ok := decode(m.logger, "memory", m.data)
	return snap, ok, nil
}

func (m *MemoryStore) Save(ctx context.Context, snap session.Snapshot) error {
	data, err := encode(snap)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.data = nil
	return nil
}

// Saves counts successful saves
func (m *MemoryStore) Saves() int {
	return m.saves
}

// Raw returns the stored bytes, nil when empty
func (m *MemoryStore) Raw() []byte {
	return m.data
}

// SetRaw replaces the stored bytes
func (m *MemoryStore) SetRaw(data []byte) {
	m.data = data
}
