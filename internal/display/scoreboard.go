package display

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/history"
	"github.com/lox/sheepshead/internal/notify"
)

// Money renders a signed amount in green or red
func (s Styles) Money(v decimal.Decimal) string {
	text := notify.Signed(v)
	if v.IsNegative() {
		return s.Negative.Render(text)
	}
	return s.Positive.Render(text)
}

// Scoreboard renders the roster in seat order with the dealer marked, the
// sitters dimmed, and the pot underneath.
func Scoreboard(s Styles, players []game.Player, pot game.Pot, dealerID int) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("Scoreboard"))
	b.WriteString("\n\n")

	width := 0
	for _, p := range players {
		width = max(width, lipgloss.Width(p.Name))
	}

	for _, p := range players {
		marker := "  "
		if p.ID == dealerID {
			marker = s.Dealer.Render("D") + " "
		}
		name := s.Name.Width(width + 2).Render(p.Name)
		status := s.Muted.Width(9).Render("")
		if p.Sitting() {
			status = s.Sitting.Width(9).Render("sitting")
		}
		fmt.Fprintf(&b, "%s%s %s %s %s\n", marker, s.Muted.Render(fmt.Sprintf("%2d", p.ID)), name, status, s.Money(p.Balance))
	}

	b.WriteString("\n")
	b.WriteString(PotLine(s, pot))
	return b.String()
}

// PotLine renders the pot ledger, oldest entry first
func PotLine(s Styles, pot game.Pot) string {
	if pot.Empty() {
		return s.Muted.Render("No pot")
	}
	parts := make([]string, 0, pot.Len())
	for _, e := range pot.Entries() {
		parts = append(parts, "$"+e.StringFixed(2))
	}
	return fmt.Sprintf("%s %s %s",
		s.Section.Render(fmt.Sprintf("Pot: %d ($%s)", pot.Len(), pot.Total().StringFixed(2))),
		s.Muted.Render("·"),
		s.Pot.Render(strings.Join(parts, " + ")))
}

// EntryLine renders one settlement with its deltas by player name
func EntryLine(s Styles, e history.Entry, players []game.Player, loc *time.Location) string {
	ids := make([]int, 0, len(e.Changes))
	for id, v := range e.Changes {
		if !v.IsZero() {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	deltas := make([]string, 0, len(ids))
	for _, id := range ids {
		name := fmt.Sprintf("#%d", id)
		if p, ok := game.FindPlayer(players, id); ok {
			name = p.Name
		}
		deltas = append(deltas, name+" "+s.Money(e.Changes[id]))
	}

	stamp := e.Timestamp
	if loc != nil {
		stamp = stamp.In(loc)
	}
	line := fmt.Sprintf("%s  %s", s.Muted.Render(stamp.Format("15:04")), s.Name.Render(e.Description))
	if len(deltas) > 0 {
		line += "\n       " + strings.Join(deltas, ", ")
	}
	return line
}

// History renders up to limit entries, newest first. A limit of zero shows all.
func History(s Styles, entries []history.Entry, players []game.Player, limit int, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("History"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(s.Muted.Render("No hands played yet"))
		return b.String()
	}
	shown := entries
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, e := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(EntryLine(s, e, players, loc))
		b.WriteString("\n")
	}
	if hidden := len(entries) - len(shown); hidden > 0 {
		b.WriteString(s.Muted.Render(fmt.Sprintf("\n… %d older", hidden)))
	}
	return b.String()
}
