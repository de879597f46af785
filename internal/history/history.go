// Package history keeps the log of applied settlements. Entries are immutable
// and carry enough to reverse themselves exactly; the log is newest first.
package history

import (
	"encoding/json"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
)

// Entry records one applied settlement
type Entry struct {
	ID           string                  `json:"id"`
	Description  string                  `json:"desc"`
	Changes      map[int]decimal.Decimal `json:"changes"`
	PotBefore    game.Pot                `json:"prevPots"`
	PotAfter     game.Pot                `json:"newPots"`
	DealerBefore int                     `json:"dealerBefore,omitempty"`
	DealerAfter  int                     `json:"dealerAfter,omitempty"`
	Timestamp    time.Time               `json:"timestamp"`
}

// NewEntry stamps a settlement with a fresh ID and the clock's current time
func NewEntry(clock quartz.Clock, description string, changes map[int]decimal.Decimal, before, after game.Pot) Entry {
	copied := make(map[int]decimal.Decimal, len(changes))
	for id, v := range changes {
		copied[id] = v
	}
	return Entry{
		ID:          uuid.NewString(),
		Description: description,
		Changes:     copied,
		PotBefore:   before.Clone(),
		PotAfter:    after.Clone(),
		Timestamp:   clock.Now(),
	}
}

// Change returns the balance delta recorded for a player
func (e Entry) Change(playerID int) decimal.Decimal {
	return e.Changes[playerID]
}

// Apply returns a copy of the roster with the entry's deltas added
func (e Entry) Apply(players []game.Player) []game.Player {
	out := game.ClonePlayers(players)
	for i := range out {
		if v, ok := e.Changes[out[i].ID]; ok {
			out[i].Balance = out[i].Balance.Add(v)
		}
	}
	return out
}

// Revert returns a copy of the roster with the entry's deltas subtracted.
// Players who joined after the entry are untouched.
func (e Entry) Revert(players []game.Player) []game.Player {
	out := game.ClonePlayers(players)
	for i := range out {
		if v, ok := e.Changes[out[i].ID]; ok {
			out[i].Balance = out[i].Balance.Sub(v)
		}
	}
	return out
}

// Log is the append-only record of settlements, newest first
type Log struct {
	entries []Entry
}

// NewLog creates a log from entries ordered newest first
func NewLog(entries ...Entry) Log {
	l := Log{entries: make([]Entry, len(entries))}
	copy(l.entries, entries)
	return l
}

// Len returns the number of recorded entries
func (l Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log, newest first
func (l Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Latest returns the most recent entry
func (l Log) Latest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[0], true
}

// Record puts an entry at the front of the log
func (l *Log) Record(e Entry) {
	entries := make([]Entry, 0, len(l.entries)+1)
	entries = append(entries, e)
	l.entries = append(entries, l.entries...)
}

// UndoLast removes and returns the most recent entry. An empty log returns false.
func (l *Log) UndoLast() (Entry, bool) {
	e, ok := l.Latest()
	if !ok {
		return Entry{}, false
	}
	l.entries = l.entries[1:]
	return e, true
}

// MarshalJSON encodes the log as an array, newest first
func (l Log) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

// UnmarshalJSON decodes an array of entries, newest first
func (l *Log) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
