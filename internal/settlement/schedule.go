package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/lox/sheepshead/internal/game"
)

// Payout is what each seat receives for one uncracked result. Amounts are
// per player; an opponent figure applies to every opponent.
type Payout struct {
	Verdict Verdict
	Grade   Grade
	Note    string

	Picker   decimal.Decimal
	Partner  decimal.Decimal
	Opponent decimal.Decimal

	AlonePicker   decimal.Decimal
	AloneOpponent decimal.Decimal
}

// Schedule settles every verdict and grade on a sample table, partnered and
// alone, so the figures always match what Settle charges.
func (e *Engine) Schedule() []Payout {
	players := game.DefaultPlayers()
	picker, partner, opponent := players[0].ID, players[1].ID, players[4].ID

	var out []Payout
	for _, v := range []Verdict{Win, Loss} {
		for _, g := range []Grade{Standard, NoSchneider, Schwarz} {
			r, _ := lookupRule(v, g)
			p := Payout{Verdict: v, Grade: g, Note: r.note}

			if res, err := e.Settle(players, game.Pot{}, Outcome{PickerID: picker, PartnerID: partner, Verdict: v, Grade: g}); err == nil {
				p.Picker = res.Changes[picker]
				p.Partner = res.Changes[partner]
				p.Opponent = res.Changes[opponent]
			}
			if res, err := e.Settle(players, game.Pot{}, Outcome{PickerID: picker, Verdict: v, Grade: g}); err == nil {
				p.AlonePicker = res.Changes[picker]
				p.AloneOpponent = res.Changes[opponent]
			}
			out = append(out, p)
		}
	}
	return out
}
