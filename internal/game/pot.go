package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveEntry = errors.New("pot entries must be positive")
	ErrEmptyPot         = errors.New("pot is empty")
	ErrConsumeRange     = errors.New("consume count out of range")
)

// Pot is the ledger of carried-over stakes. Each entry is the stake of one
// passed or lost hand; entries are claimed oldest first.
type Pot struct {
	entries []decimal.Decimal
}

// NewPot creates a ledger from existing entries
func NewPot(entries ...decimal.Decimal) (Pot, error) {
	var p Pot
	for _, e := range entries {
		if err := p.Append(e); err != nil {
			return Pot{}, err
		}
	}
	return p, nil
}

// Len returns the number of entries in the ledger
func (p Pot) Len() int {
	return len(p.entries)
}

// Empty reports whether there is nothing carried over
func (p Pot) Empty() bool {
	return len(p.entries) == 0
}

// Entries returns a copy of the ledger entries, oldest first
func (p Pot) Entries() []decimal.Decimal {
	out := make([]decimal.Decimal, len(p.entries))
	copy(out, p.entries)
	return out
}

// Total returns the sum of all entries
func (p Pot) Total() decimal.Decimal {
	return sum(p.entries)
}

// Leading returns the sum of the first n entries without removing them
func (p Pot) Leading(n int) (decimal.Decimal, error) {
	if n < 1 || n > len(p.entries) {
		return decimal.Zero, fmt.Errorf("%w: %d of %d", ErrConsumeRange, n, len(p.entries))
	}
	return sum(p.entries[:n]), nil
}

// Clone returns an independent copy of the ledger
func (p Pot) Clone() Pot {
	return Pot{entries: p.Entries()}
}

// Equal reports whether both ledgers hold the same entries in the same order
func (p Pot) Equal(other Pot) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i := range p.entries {
		if !p.entries[i].Equal(other.entries[i]) {
			return false
		}
	}
	return true
}

// Append adds a new entry at the back of the ledger
func (p *Pot) Append(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositiveEntry, amount)
	}
	p.entries = append(p.entries, amount)
	return nil
}

// ConsumeLeading removes the first n entries and returns their sum
func (p *Pot) ConsumeLeading(n int) (decimal.Decimal, error) {
	total, err := p.Leading(n)
	if err != nil {
		return decimal.Zero, err
	}
	rest := make([]decimal.Decimal, len(p.entries)-n)
	copy(rest, p.entries[n:])
	p.entries = rest
	return total, nil
}

// AddToLast folds an amount into the newest entry
func (p *Pot) AddToLast(amount decimal.Decimal) error {
	if len(p.entries) == 0 {
		return ErrEmptyPot
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositiveEntry, amount)
	}
	last := len(p.entries) - 1
	p.entries[last] = p.entries[last].Add(amount)
	return nil
}

// MarshalJSON encodes the ledger as a plain array of amounts
func (p Pot) MarshalJSON() ([]byte, error) {
	if p.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.entries)
}

// UnmarshalJSON decodes a plain array of amounts, rejecting non-positive entries
func (p *Pot) UnmarshalJSON(data []byte) error {
	var entries []decimal.Decimal
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	decoded, err := NewPot(entries...)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
