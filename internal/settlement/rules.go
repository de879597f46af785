package settlement

import "github.com/shopspring/decimal"

// ruleKey selects a scoring rule by how the hand ended
type ruleKey struct {
	verdict Verdict
	grade   Grade
}

// rule scores the card play of a hand. A bumped rule pays double the grade's
// multiplier.
type rule struct {
	bump  bool
	score func(h *hand, stake decimal.Decimal)
	note  string
}

var rules = map[ruleKey]rule{
	{Win, Standard}:     {score: splitStake},
	{Win, NoSchneider}:  {score: splitStake},
	{Win, Schwarz}:      {score: splitStake},
	{Loss, Standard}:    {bump: true, score: bumpStake},
	{Loss, NoSchneider}: {bump: true, score: bumpStake},
	// Schwarzed picker pays every opponent alone; the partner is spared.
	{Loss, Schwarz}: {score: pickerPaysAll, note: " (Rule 6: Pkr pays all)"},
}

func lookupRule(v Verdict, g Grade) (rule, bool) {
	r, ok := rules[ruleKey{verdict: v, grade: g}]
	return r, ok
}

// points is the stake multiplier for a grade before crack doubling
func (r rule) points(g Grade) int {
	if r.bump {
		return 2 * g.Multiplier()
	}
	return g.Multiplier()
}

// splitStake pays a won hand: each opponent pays one stake, a lone picker
// collects all of it, otherwise the partner collects one and the picker two.
func splitStake(h *hand, stake decimal.Decimal) {
	for _, id := range h.opponents {
		h.add(id, stake.Neg())
	}
	if h.alone {
		h.add(h.picker, stake.Mul(decimal.NewFromInt(int64(len(h.opponents)))))
		return
	}
	h.add(h.partner, stake)
	h.add(h.picker, stake.Mul(decimal.NewFromInt(2)))
}

// bumpStake is splitStake with the money flowing the other way
func bumpStake(h *hand, stake decimal.Decimal) {
	splitStake(h, stake.Neg())
}

func pickerPaysAll(h *hand, stake decimal.Decimal) {
	for _, id := range h.opponents {
		h.add(id, stake)
	}
	h.add(h.picker, stake.Mul(decimal.NewFromInt(int64(len(h.opponents)))).Neg())
}

// splitShares divides an amount between picker and partner in whole share
// units, a third of the units (rounded) going to the partner. Anything that is
// not a whole number of units stays with the picker so the split always adds
// back up to the amount.
func splitShares(amount, unit decimal.Decimal) (picker, partner decimal.Decimal) {
	units := amount.Div(unit).Round(0)
	partnerUnits := units.Div(decimal.NewFromInt(3)).Round(0)
	partner = partnerUnits.Mul(unit)
	return amount.Sub(partner), partner
}
