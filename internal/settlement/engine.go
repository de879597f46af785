// Package settlement computes the money that changes hands after each
// Sheepshead hand. Everything here is pure: callers pass the roster and pot in
// and receive deltas and a new pot back, nothing is mutated in place.
package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
)

// Result is the settled outcome of one action at the table
type Result struct {
	// Changes holds a balance delta for every seated player, zero included
	Changes map[int]decimal.Decimal
	// Pot is the ledger after the action
	Pot game.Pot
	// PotFlow is the net amount players paid into the ledger (negative when
	// they took money out of it)
	PotFlow decimal.Decimal
	// Description summarises the branch taken for the history log
	Description string
	// Rotate reports whether the deal passes to the next player afterwards
	Rotate bool
}

// Total returns the sum of all balance changes. Together with PotFlow it is
// always zero.
func (r Result) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range r.Changes {
		total = total.Add(v)
	}
	return total
}

// Engine settles hands for a fixed set of stakes
type Engine struct {
	stakes game.Stakes
}

// NewEngine creates an engine for the given stakes
func NewEngine(stakes game.Stakes) (*Engine, error) {
	if err := stakes.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stakes: %w", err)
	}
	return &Engine{stakes: stakes}, nil
}

// Stakes returns the amounts the engine settles with
func (e *Engine) Stakes() game.Stakes {
	return e.stakes
}

// hand accumulates the deltas of one settlement
type hand struct {
	changes   map[int]decimal.Decimal
	picker    int
	partner   int
	alone     bool
	opponents []int
}

func newHand(players []game.Player, o Outcome) *hand {
	h := &hand{
		changes: make(map[int]decimal.Decimal, len(players)),
		picker:  o.PickerID,
		partner: o.PartnerID,
		alone:   o.Alone(),
	}
	for _, p := range players {
		h.changes[p.ID] = decimal.Zero
		if !p.Active || p.ID == h.picker || (!h.alone && p.ID == h.partner) {
			continue
		}
		h.opponents = append(h.opponents, p.ID)
	}
	return h
}

func (h *hand) add(id int, amount decimal.Decimal) {
	h.changes[id] = h.changes[id].Add(amount)
}

// Validate checks an outcome against the table without settling it
func (e *Engine) Validate(players []game.Player, pot game.Pot, o Outcome) error {
	if _, ok := lookupRule(o.Verdict, o.Grade); !ok {
		if o.Verdict != Win && o.Verdict != Loss {
			return fmt.Errorf("%w: %d", ErrInvalidVerdict, int(o.Verdict))
		}
		return fmt.Errorf("%w: %d", ErrInvalidGrade, int(o.Grade))
	}
	if o.Crack < NoCrack || o.Crack > Recracked {
		return fmt.Errorf("%w: %d", ErrInvalidCrack, int(o.Crack))
	}

	if active := len(game.ActivePlayers(players)); active != game.HandSize {
		return fmt.Errorf("%w: have %d", ErrTableSize, active)
	}

	if o.PickerID == 0 {
		return ErrNoPicker
	}
	picker, ok := game.FindPlayer(players, o.PickerID)
	if !ok {
		return fmt.Errorf("picker %d: %w", o.PickerID, game.ErrUnknownPlayer)
	}
	if !picker.Active {
		return fmt.Errorf("%w: %s", ErrInactivePicker, picker.Name)
	}

	if !o.Alone() {
		partner, ok := game.FindPlayer(players, o.PartnerID)
		if !ok {
			return fmt.Errorf("partner %d: %w", o.PartnerID, game.ErrUnknownPlayer)
		}
		if !partner.Active {
			return fmt.Errorf("%w: %s", ErrInactivePartner, partner.Name)
		}
	}

	if !pot.Empty() && (o.WageredPots < 1 || o.WageredPots > pot.Len()) {
		return fmt.Errorf("%w: %d of %d", ErrWagerOutOfRange, o.WageredPots, pot.Len())
	}
	return nil
}

// Settle scores a played hand and any pot wagered on it. Invalid outcomes
// return an error and no result.
func (e *Engine) Settle(players []game.Player, pot game.Pot, o Outcome) (Result, error) {
	if err := e.Validate(players, pot, o); err != nil {
		return Result{}, err
	}

	r, _ := lookupRule(o.Verdict, o.Grade)
	stake := e.stakes.BaseUnit.
		Mul(decimal.NewFromInt(int64(r.points(o.Grade)))).
		Mul(decimal.NewFromInt(int64(o.Crack.Multiplier())))

	h := newHand(players, o)
	r.score(h, stake)

	desc := describe(o) + r.note

	next := pot.Clone()
	flow := decimal.Zero
	if !pot.Empty() {
		var err error
		var potDesc string
		flow, potDesc, err = e.settlePot(h, players, &next, o)
		if err != nil {
			return Result{}, err
		}
		desc += potDesc
	}

	return Result{
		Changes:     h.changes,
		Pot:         next,
		PotFlow:     flow,
		Description: desc,
		Rotate:      true,
	}, nil
}

// settlePot moves the wagered pot entries. A win pays them out to the picker's
// side; a loss makes that side match them in a new entry that every sitter
// also pays into.
func (e *Engine) settlePot(h *hand, players []game.Player, pot *game.Pot, o Outcome) (decimal.Decimal, string, error) {
	if o.Verdict == Win {
		wager, err := pot.ConsumeLeading(o.WageredPots)
		if err != nil {
			return decimal.Zero, "", err
		}
		e.share(h, wager)
		return wager.Neg(), " & Pot", nil
	}

	wager, err := pot.Leading(o.WageredPots)
	if err != nil {
		return decimal.Zero, "", err
	}
	e.share(h, wager.Neg())
	if err := pot.Append(wager); err != nil {
		return decimal.Zero, "", err
	}
	flow := wager
	desc := " & Matched Pot"

	sitters := game.Sitters(players)
	if len(sitters) == 0 {
		return flow, desc, nil
	}
	penalty := decimal.Zero
	for _, s := range sitters {
		h.add(s.ID, e.stakes.PotContribution.Neg())
		penalty = penalty.Add(e.stakes.PotContribution)
	}
	if err := pot.AddToLast(penalty); err != nil {
		return decimal.Zero, "", err
	}
	return flow.Add(penalty), desc + " + Sitters", nil
}

// share credits a signed pot amount to the picker's side
func (e *Engine) share(h *hand, amount decimal.Decimal) {
	if h.alone {
		h.add(h.picker, amount)
		return
	}
	picker, partner := splitShares(amount.Abs(), e.stakes.ShareUnit)
	if amount.IsNegative() {
		picker, partner = picker.Neg(), partner.Neg()
	}
	h.add(h.picker, picker)
	h.add(h.partner, partner)
}

// Pass settles a hand nobody picked: every seated player pays the pot
// contribution into one new pot entry.
func (e *Engine) Pass(players []game.Player, pot game.Pot) (Result, error) {
	if len(players) == 0 {
		return Result{}, fmt.Errorf("pass: %w", ErrTableSize)
	}

	changes := make(map[int]decimal.Decimal, len(players))
	for _, p := range players {
		changes[p.ID] = e.stakes.PotContribution.Neg()
	}
	entry := e.stakes.PotContribution.Mul(decimal.NewFromInt(int64(len(players))))

	next := pot.Clone()
	if err := next.Append(entry); err != nil {
		return Result{}, err
	}

	return Result{
		Changes:     changes,
		Pot:         next,
		PotFlow:     entry,
		Description: "Passed - Pot Added",
		Rotate:      true,
	}, nil
}

// ThreeKings pays the kings unit from every other seated player to the
// holder of three kings. The pot and the deal are untouched.
func (e *Engine) ThreeKings(players []game.Player, pot game.Pot, winnerID int) (Result, error) {
	winner, ok := game.FindPlayer(players, winnerID)
	if !ok {
		return Result{}, fmt.Errorf("three kings %d: %w", winnerID, game.ErrUnknownPlayer)
	}

	changes := make(map[int]decimal.Decimal, len(players))
	total := decimal.Zero
	for _, p := range players {
		if p.ID == winnerID {
			continue
		}
		changes[p.ID] = e.stakes.KingsUnit.Neg()
		total = total.Add(e.stakes.KingsUnit)
	}
	changes[winnerID] = total

	return Result{
		Changes:     changes,
		Pot:         pot.Clone(),
		PotFlow:     decimal.Zero,
		Description: "3 Kings: " + winner.Name,
	}, nil
}

func describe(o Outcome) string {
	desc := "Picker Won"
	if o.Verdict == Loss {
		desc = "Picker Lost (Bump)"
	}
	desc += " (" + o.Grade.Label() + ")"
	switch o.Crack {
	case Cracked:
		desc += " [Cracked]"
	case Recracked:
		desc += " [Re-Cracked]"
	}
	if o.Alone() {
		desc += " Alone"
	}
	return desc
}
