package game

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Player represents a seated player and their running cash balance
type Player struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Active  bool            `json:"active"` // Playing the current hand (false while sitting out)
}

// DefaultName returns the placeholder name given to a new player
func DefaultName(id int) string {
	return fmt.Sprintf("Player %d", id)
}

// Sitting returns true if the player sits out the current hand
func (p Player) Sitting() bool {
	return !p.Active
}
