package session

import (
	"errors"
	"fmt"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/history"
)

// Snapshot is the complete persisted state of a game
type Snapshot struct {
	Players  []game.Player `json:"players"`
	Pot      game.Pot      `json:"pots"`
	History  history.Log   `json:"history"`
	DealerID int           `json:"dealerId"`
}

// Validate checks that a snapshot describes a playable table
func (s Snapshot) Validate() error {
	if len(s.Players) > game.MaxPlayers {
		return fmt.Errorf("snapshot has %d players (max %d)", len(s.Players), game.MaxPlayers)
	}

	seen := make(map[int]bool, len(s.Players))
	var errs []error
	for _, p := range s.Players {
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("invalid player id %d", p.ID))
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate player id %d", p.ID))
		}
		seen[p.ID] = true
	}

	if len(s.Players) > 0 && !seen[s.DealerID] {
		errs = append(errs, fmt.Errorf("dealer %d is not seated", s.DealerID))
	}
	return errors.Join(errs...)
}

// Snapshot captures the current state. The result shares nothing with the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Players:  game.ClonePlayers(s.players),
		Pot:      s.pot.Clone(),
		History:  history.NewLog(s.history.Entries()...),
		DealerID: s.dealerID,
	}
}
