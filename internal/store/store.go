// Package store persists game snapshots. A snapshot is always written as a
// full replace, and one that is missing or cannot be decoded loads as absent
// so the caller starts a fresh game.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/sheepshead/internal/session"
)

// DefaultKey names the snapshot in key-value backends
const DefaultKey = "sheepshead_data"

// Store loads and saves the single snapshot of the game in progress
type Store interface {
	// Load returns the saved snapshot. ok is false when nothing usable is stored.
	Load(ctx context.Context) (snap session.Snapshot, ok bool, err error)
	Save(ctx context.Context, snap session.Snapshot) error
	Clear(ctx context.Context) error
}

func encode(snap session.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decode treats anything unreadable as absent. The caller has already
// established that some data exists, so a warning is worth logging.
func decode(logger *log.Logger, source string, data []byte) (session.Snapshot, bool) {
	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("Ignoring unreadable snapshot", "source", source, "error", err)
		return session.Snapshot{}, false
	}
	if err := snap.Validate(); err != nil {
		logger.Warn("Ignoring invalid snapshot", "source", source, "error", err)
		return session.Snapshot{}, false
	}
	return snap, true
}
