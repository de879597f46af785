package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// HandSize is the number of players dealt into every hand
	HandSize = 5
	// MaxPlayers is the largest roster the table accepts
	MaxPlayers = 10
	// DefaultPlayerCount is the roster size of a fresh game
	DefaultPlayerCount = 5
)

var (
	ErrRosterFull    = errors.New("roster is full")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrEmptyName     = errors.New("player name cannot be empty")
)

// DefaultPlayers returns the roster of a fresh game
func DefaultPlayers() []Player {
	players := make([]Player, DefaultPlayerCount)
	for i := range players {
		id := i + 1
		players[i] = Player{ID: id, Name: DefaultName(id), Active: true}
	}
	return players
}

// ClonePlayers returns a copy of the roster that can be mutated freely
func ClonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

// IndexOf returns the roster position of the player or -1
func IndexOf(players []Player, id int) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindPlayer looks up a player by ID
func FindPlayer(players []Player, id int) (Player, bool) {
	if i := IndexOf(players, id); i >= 0 {
		return players[i], true
	}
	return Player{}, false
}

// ActivePlayers returns the players dealt into the current hand, in seat order
func ActivePlayers(players []Player) []Player {
	active := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// Sitters returns the players sitting out the current hand, in seat order
func Sitters(players []Player) []Player {
	var sitters []Player
	for _, p := range players {
		if !p.Active {
			sitters = append(sitters, p)
		}
	}
	return sitters
}

// NextID returns the ID the next added player receives
func NextID(players []Player) int {
	maxID := 0
	for _, p := range players {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// AddPlayer appends a new zero-balance player named name, or DefaultName when
// name is empty. The newcomer plays only while fewer than HandSize players are
// active.
func AddPlayer(players []Player, name string) ([]Player, Player, error) {
	if name != "" {
		name = strings.TrimSpace(name)
		if name == "" {
			return players, Player{}, ErrEmptyName
		}
	}
	if len(players) >= MaxPlayers {
		return players, Player{}, fmt.Errorf("add player: %w (max %d)", ErrRosterFull, MaxPlayers)
	}

	id := NextID(players)
	if name == "" {
		name = DefaultName(id)
	}
	p := Player{
		ID:     id,
		Name:   name,
		Active: len(ActivePlayers(players)) < HandSize,
	}

	out := make([]Player, 0, len(players)+1)
	out = append(out, players...)
	out = append(out, p)
	return out, p, nil
}

// RenamePlayer changes a player's display name
func RenamePlayer(players []Player, id int, name string) ([]Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return players, ErrEmptyName
	}

	i := IndexOf(players, id)
	if i < 0 {
		return players, fmt.Errorf("rename player %d: %w", id, ErrUnknownPlayer)
	}

	out := ClonePlayers(players)
	out[i].Name = name
	return out, nil
}

// RemovePlayer drops a player from the roster, keeping the seat order of the rest
func RemovePlayer(players []Player, id int) ([]Player, error) {
	i := IndexOf(players, id)
	if i < 0 {
		return players, fmt.Errorf("remove player %d: %w", id, ErrUnknownPlayer)
	}

	out := make([]Player, 0, len(players)-1)
	out = append(out, players[:i]...)
	out = append(out, players[i+1:]...)
	return out, nil
}
