package game

import "fmt"

// SitOutMode selects how the active set follows the dealer
type SitOutMode int

const (
	// SitOutWindow recomputes the active set from the dealer position: the
	// dealer and the players seated just before them sit out, so exactly
	// HandSize players remain active.
	SitOutWindow SitOutMode = iota
	// SitOutSwap only flips the incoming dealer out and the previous dealer
	// back in. Kept for tables that relied on the older scorer; it can drift
	// from HandSize active players after manual dealer changes.
	SitOutSwap
)

// String returns the configuration name of the mode
func (m SitOutMode) String() string {
	switch m {
	case SitOutWindow:
		return "window"
	case SitOutSwap:
		return "swap"
	default:
		return fmt.Sprintf("SitOutMode(%d)", int(m))
	}
}

// ParseSitOutMode parses the configuration name of a mode
func ParseSitOutMode(s string) (SitOutMode, error) {
	switch s {
	case "window", "":
		return SitOutWindow, nil
	case "swap":
		return SitOutSwap, nil
	default:
		return 0, fmt.Errorf("unknown sit-out mode %q (want window or swap)", s)
	}
}

// NextDealer returns the player seated after the current dealer, wrapping
// around. An unknown dealer hands the deal to the first seat.
func NextDealer(players []Player, currentDealerID int) int {
	if len(players) == 0 {
		return 0
	}
	next := (IndexOf(players, currentDealerID) + 1) % len(players)
	return players[next].ID
}

// Derive returns a copy of the roster with active flags set for dealerID.
// previousDealerID is only consulted by SitOutSwap.
func (m SitOutMode) Derive(players []Player, dealerID, previousDealerID int) []Player {
	if m == SitOutSwap {
		return SwapActive(players, dealerID, previousDealerID)
	}
	return ComputeActive(players, dealerID)
}

// ComputeActive recomputes the active set from scratch. Tables of HandSize or
// fewer play everyone. Larger tables sit the dealer out together with the
// len-HandSize-1 players seated immediately before the dealer.
func ComputeActive(players []Player, dealerID int) []Player {
	out := ClonePlayers(players)
	n := len(out)
	for i := range out {
		out[i].Active = true
	}
	if n <= HandSize {
		return out
	}

	anchor := IndexOf(out, dealerID)
	if anchor < 0 {
		anchor = 0
	}
	for k := 0; k < n-HandSize; k++ {
		out[(anchor-k+n)%n].Active = false
	}
	return out
}

// SwapActive applies the incremental rule: six-player tables sit only the
// incoming dealer out; seven or more sit the incoming dealer out and bring
// the previous dealer back, leaving every other flag untouched. When the flags
// it starts from would not leave exactly HandSize players in, the table is
// reseated with ComputeActive instead.
func SwapActive(players []Player, dealerID, previousDealerID int) []Player {
	out := ClonePlayers(players)
	switch n := len(out); {
	case n <= HandSize:
		for i := range out {
			out[i].Active = true
		}
	case n == HandSize+1:
		for i := range out {
			out[i].Active = out[i].ID != dealerID
		}
	default:
		for i := range out {
			switch out[i].ID {
			case dealerID:
				out[i].Active = false
			case previousDealerID:
				out[i].Active = true
			}
		}
		if len(ActivePlayers(out)) != HandSize {
			return ComputeActive(players, dealerID)
		}
	}
	return out
}
