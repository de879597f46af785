package display

import (
	"fmt"
	"strings"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/settlement"
)

var cardPoints = []struct {
	card   string
	points int
}{
	{"Ace", 11},
	{"Ten", 10},
	{"King", 4},
	{"Queen", 3},
	{"Jack", 2},
	{"9, 8, 7", 0},
}

var trumpRank = []string{
	"Queen of Clubs",
	"Queen of Spades",
	"Queen of Hearts",
	"Queen of Diamonds",
	"Jack of Clubs",
	"Jack of Spades",
	"Jack of Hearts",
	"Jack of Diamonds (partner)",
	"Diamonds (A, 10, K, 9, 8, 7)",
}

// Rules renders the card reference and the payout table for the given stakes
func Rules(s Styles, stakes game.Stakes, schedule []settlement.Payout) string {
	var b strings.Builder

	b.WriteString(s.Header.Render("Rules Reference"))
	b.WriteString("\n\n")

	b.WriteString(s.Section.Render("Card points (120 total)"))
	b.WriteString("\n")
	for _, c := range cardPoints {
		fmt.Fprintf(&b, "  %-8s %3d\n", c.card, c.points)
	}

	b.WriteString("\n")
	b.WriteString(s.Section.Render("Trump, high to low"))
	b.WriteString("\n")
	for i, t := range trumpRank {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, t)
	}

	b.WriteString("\n")
	b.WriteString(s.Section.Render("Mechanics"))
	b.WriteString("\n")
	for _, line := range []string{
		"Schneider: the defence needs 31+ points to save it.",
		"Bump: a losing picker pays double.",
		"Crack doubles the hand, re-crack doubles it again.",
		"Leaster: if nobody picks, everyone pays $" + stakes.PotContribution.StringFixed(2) + " into a new pot.",
		"Pot: a winning picker takes the wagered pots 2/3 (partner 1/3).",
		"     A losing picker's side matches them and sitters each pay $" + stakes.PotContribution.StringFixed(2) + ".",
		"Three kings: every other player pays $" + stakes.KingsUnit.StringFixed(2) + ".",
	} {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Payouts(s, schedule))
	return b.String()
}

// Payouts renders what each seat pays or collects per result, before cracks
func Payouts(s Styles, schedule []settlement.Payout) string {
	var b strings.Builder
	b.WriteString(s.Section.Render("Payouts (per player, uncracked)"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-20s %9s %9s %9s   %9s %9s\n", "", "picker", "partner", "opp", "alone", "opp")
	for _, p := range schedule {
		label := fmt.Sprintf("%s %s", p.Verdict, p.Grade)
		fmt.Fprintf(&b, "  %-20s %9s %9s %9s   %9s %9s",
			label,
			p.Picker.StringFixed(2), p.Partner.StringFixed(2), p.Opponent.StringFixed(2),
			p.AlonePicker.StringFixed(2), p.AloneOpponent.StringFixed(2))
		if p.Note != "" {
			b.WriteString(s.Muted.Render(p.Note))
		}
		b.WriteString("\n")
	}
	return b.String()
}
