// Package session owns the state of one Sheepshead game: roster, pot, dealer
// and history. Every operation either applies completely or returns an error
// and leaves the state untouched. Observers are told about each successful
// change so callers can persist it.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/history"
	"github.com/lox/sheepshead/internal/settlement"
)

// EventKind identifies what changed
type EventKind int

const (
	EventSettled EventKind = iota
	EventUndone
	EventRosterChanged
	EventDealerChanged
	EventReset
)

// String returns a short name for logging
func (k EventKind) String() string {
	switch k {
	case EventSettled:
		return "settled"
	case EventUndone:
		return "undone"
	case EventRosterChanged:
		return "roster"
	case EventDealerChanged:
		return "dealer"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a successful change
type Event struct {
	Kind        EventKind
	Description string
	Snapshot    Snapshot
}

// Observer is notified after every successful change
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Event)

// OnEvent calls f(e)
func (f ObserverFunc) OnEvent(e Event) { f(e) }

// Options configures a session
type Options struct {
	Stakes game.Stakes
	SitOut game.SitOutMode
	// UndoRestoresDealer hands the deal back when a rotating settlement is undone
	UndoRestoresDealer bool
	Clock              quartz.Clock
	Logger             *log.Logger
}

// Session is the single-writer container for a game in progress
type Session struct {
	engine             *settlement.Engine
	sitOut             game.SitOutMode
	undoRestoresDealer bool
	clock              quartz.Clock
	logger             *log.Logger

	players  []game.Player
	pot      game.Pot
	dealerID int
	history  history.Log

	observers []Observer
}

var ErrNoHistory = errors.New("nothing to undo")

// New creates a session holding a fresh game
func New(opts Options) (*Session, error) {
	engine, err := settlement.NewEngine(opts.Stakes)
	if err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		engine:             engine,
		sitOut:             opts.SitOut,
		undoRestoresDealer: opts.UndoRestoresDealer,
		clock:              opts.Clock,
		logger:             opts.Logger.WithPrefix("session"),
	}
	s.players, s.pot, s.history, s.dealerID = freshGame(s.sitOut)
	return s, nil
}

// Restore creates a session continuing a saved game
func Restore(opts Options, snap Snapshot) (*Session, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	s.players = game.ClonePlayers(snap.Players)
	s.pot = snap.Pot.Clone()
	s.history = history.NewLog(snap.History.Entries()...)
	s.dealerID = snap.DealerID
	return s, nil
}

func freshGame(mode game.SitOutMode) ([]game.Player, game.Pot, history.Log, int) {
	players := game.DefaultPlayers()
	dealer := players[0].ID
	return mode.Derive(players, dealer, dealer), game.Pot{}, history.Log{}, dealer
}

// Subscribe registers an observer for future changes
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) notify(kind EventKind, description string) {
	s.logger.Debug("State changed", "event", kind, "desc", description)
	if len(s.observers) == 0 {
		return
	}
	e := Event{Kind: kind, Description: description, Snapshot: s.Snapshot()}
	for _, o := range s.observers {
		o.OnEvent(e)
	}
}

// Stakes returns the amounts the table plays for
func (s *Session) Stakes() game.Stakes {
	return s.engine.Stakes()
}

// Players returns a copy of the roster in seat order
func (s *Session) Players() []game.Player {
	return game.ClonePlayers(s.players)
}

// Pot returns a copy of the pot ledger
func (s *Session) Pot() game.Pot {
	return s.pot.Clone()
}

// DealerID returns the current dealer
func (s *Session) DealerID() int {
	return s.dealerID
}

// History returns the settlement log, newest first
func (s *Session) History() []history.Entry {
	return s.history.Entries()
}

// HasProgress reports whether there is anything a reset would lose
func (s *Session) HasProgress() bool {
	if s.history.Len() > 0 || !s.pot.Empty() {
		return true
	}
	for _, p := range s.players {
		if !p.Balance.IsZero() {
			return true
		}
	}
	return false
}

// Holdings returns the sum of all balances plus the pot. Settlements never
// change it; only removing a player with a non-zero balance does.
func (s *Session) Holdings() decimal.Decimal {
	total := s.pot.Total()
	for _, p := range s.players {
		total = total.Add(p.Balance)
	}
	return total
}

// PlayHand settles a played hand, rotates the deal and records the result
func (s *Session) PlayHand(o settlement.Outcome) (history.Entry, error) {
	r, err := s.engine.Settle(s.players, s.pot, o)
	if err != nil {
		return history.Entry{}, fmt.Errorf("settle hand: %w", err)
	}
	return s.apply(r), nil
}

// Pass settles a hand nobody picked
func (s *Session) Pass() (history.Entry, error) {
	r, err := s.engine.Pass(s.players, s.pot)
	if err != nil {
		return history.Entry{}, err
	}
	return s.apply(r), nil
}

// ThreeKings pays out a three-kings bonus
func (s *Session) ThreeKings(winnerID int) (history.Entry, error) {
	r, err := s.engine.ThreeKings(s.players, s.pot, winnerID)
	if err != nil {
		return history.Entry{}, err
	}
	return s.apply(r), nil
}

// apply commits a computed result. Nothing here can fail, so the state moves
// from one consistent value to the next in one step.
func (s *Session) apply(r settlement.Result) history.Entry {
	e := history.NewEntry(s.clock, r.Description, r.Changes, s.pot, r.Pot)
	e.DealerBefore = s.dealerID
	e.DealerAfter = s.dealerID

	players := e.Apply(s.players)
	if r.Rotate {
		next := game.NextDealer(players, s.dealerID)
		players = s.sitOut.Derive(players, next, s.dealerID)
		e.DealerAfter = next
	}

	s.players = players
	s.pot = r.Pot.Clone()
	s.dealerID = e.DealerAfter
	s.history.Record(e)

	s.logger.Info("Settled", "desc", e.Description, "pot", s.pot.Total().StringFixed(2), "dealer", s.dealerID)
	s.notify(EventSettled, e.Description)
	return e
}

// Undo reverses the most recent settlement: balances lose its deltas and the
// pot returns to what it was before. The deal only moves back when the
// session was configured with UndoRestoresDealer.
func (s *Session) Undo() (history.Entry, error) {
	e, ok := s.history.Latest()
	if !ok {
		return history.Entry{}, ErrNoHistory
	}

	players := e.Revert(s.players)
	dealer := s.dealerID
	if s.undoRestoresDealer && e.DealerBefore != e.DealerAfter {
		if _, seated := game.FindPlayer(players, e.DealerBefore); seated {
			players = s.sitOut.Derive(players, e.DealerBefore, s.dealerID)
			dealer = e.DealerBefore
		}
	}

	s.history.UndoLast()
	s.players = players
	s.pot = e.PotBefore.Clone()
	s.dealerID = dealer

	s.logger.Info("Undid settlement", "desc", e.Description)
	s.notify(EventUndone, e.Description)
	return e, nil
}

// SetDealer hands the deal to a player outside the normal rotation
func (s *Session) SetDealer(id int) error {
	p, ok := game.FindPlayer(s.players, id)
	if !ok {
		return fmt.Errorf("set dealer %d: %w", id, game.ErrUnknownPlayer)
	}
	s.players = s.sitOut.Derive(s.players, id, s.dealerID)
	s.dealerID = id
	s.notify(EventDealerChanged, p.Name+" deals")
	return nil
}

// AddPlayer seats a new zero-balance player. An empty name gives the default
// "Player <id>"; a name of only whitespace is rejected before anything changes.
func (s *Session) AddPlayer(name string) (game.Player, error) {
	players, p, err := game.AddPlayer(s.players, name)
	if err != nil {
		return game.Player{}, err
	}
	s.players = s.reseat(players)
	p, _ = game.FindPlayer(s.players, p.ID)
	s.notify(EventRosterChanged, "added "+p.Name)
	return p, nil
}

// RenamePlayer changes a player's display name
func (s *Session) RenamePlayer(id int, name string) error {
	players, err := game.RenamePlayer(s.players, id, name)
	if err != nil {
		return err
	}
	s.players = players
	s.notify(EventRosterChanged, "renamed player")
	return nil
}

// RemovePlayer unseats a player. When the dealer leaves, the first remaining
// player takes the deal.
func (s *Session) RemovePlayer(id int) error {
	players, err := game.RemovePlayer(s.players, id)
	if err != nil {
		return err
	}
	if id == s.dealerID {
		s.dealerID = 0
		if len(players) > 0 {
			s.dealerID = players[0].ID
		}
	}
	s.players = s.reseat(players)
	s.notify(EventRosterChanged, "removed player")
	return nil
}

// reseat recomputes the active flags after a roster change in either sit-out
// mode. The swap rule then carries on from a full table at the next deal.
func (s *Session) reseat(players []game.Player) []game.Player {
	return game.ComputeActive(players, s.dealerID)
}

// Reset discards the game and starts over with the default roster
func (s *Session) Reset() {
	s.players, s.pot, s.history, s.dealerID = freshGame(s.sitOut)
	s.logger.Info("Game reset")
	s.notify(EventReset, "new game")
}
