package settlement

import (
	"fmt"
	"strings"
)

// Verdict is whether the picker's side made their points
type Verdict int

const (
	Win Verdict = iota
	Loss
)

// String returns the verdict name
func (v Verdict) String() string {
	switch v {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// ParseVerdict parses "win" or "loss"
func ParseVerdict(s string) (Verdict, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "won":
		return Win, nil
	case "loss", "lose", "lost":
		return Loss, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidVerdict, s)
	}
}

// Grade describes how decisively the hand was won or lost
type Grade int

const (
	// Standard is a plain win or loss (the losing side still made schneider)
	Standard Grade = iota
	// NoSchneider means the losing side failed to reach schneider
	NoSchneider
	// Schwarz means the losing side took no tricks
	Schwarz
)

// String returns the grade name used in configuration and flags
func (g Grade) String() string {
	switch g {
	case Standard:
		return "standard"
	case NoSchneider:
		return "no-schneider"
	case Schwarz:
		return "schwarz"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}

// Label returns the short form shown in the history log
func (g Grade) Label() string {
	switch g {
	case Standard:
		return "Schneider"
	case NoSchneider:
		return "No Sch"
	case Schwarz:
		return "Schw"
	default:
		return g.String()
	}
}

// Multiplier returns the stake multiplier for the grade
func (g Grade) Multiplier() int {
	switch g {
	case NoSchneider:
		return 2
	case Schwarz:
		return 3
	default:
		return 1
	}
}

// ParseGrade parses a grade name
func ParseGrade(s string) (Grade, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "no-schneider", "noschneider", "schneider":
		return NoSchneider, nil
	case "schwarz":
		return Schwarz, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
}

// Crack is the doubling challenge level declared before the hand was scored
type Crack int

const (
	NoCrack Crack = iota
	Cracked
	Recracked
)

// String returns the crack name used in flags
func (c Crack) String() string {
	switch c {
	case NoCrack:
		return "none"
	case Cracked:
		return "crack"
	case Recracked:
		return "recrack"
	default:
		return fmt.Sprintf("Crack(%d)", int(c))
	}
}

// Multiplier returns 1, 2 or 4
func (c Crack) Multiplier() int {
	switch c {
	case Cracked:
		return 2
	case Recracked:
		return 4
	default:
		return 1
	}
}

// ParseCrack parses a crack level
func ParseCrack(s string) (Crack, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return NoCrack, nil
	case "crack", "cracked":
		return Cracked, nil
	case "recrack", "re-crack", "recracked":
		return Recracked, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCrack, s)
	}
}

// Outcome is the declaration of one played hand
type Outcome struct {
	PickerID  int
	PartnerID int // 0, or the picker's own ID, for a lone hand
	Verdict   Verdict
	Grade     Grade
	Crack     Crack
	// WageredPots is how many leading pot entries were played for. It must be
	// between 1 and the pot length when the pot has entries and is ignored
	// otherwise.
	WageredPots int
}

// Alone reports whether the picker played without a partner
func (o Outcome) Alone() bool {
	return o.PartnerID == 0 || o.PartnerID == o.PickerID
}
