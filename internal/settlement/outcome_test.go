package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sheepshead/internal/game"
)

func TestParseGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Grade
	}{
		{"standard", Standard},
		{"", Standard},
		{"no-schneider", NoSchneider},
		{"schneider", NoSchneider},
		{"Schwarz", Schwarz},
	}
	for _, tt := range tests {
		got, err := ParseGrade(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseGrade("grand")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestParseCrack(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Crack{"": NoCrack, "none": NoCrack, "crack": Cracked, "re-crack": Recracked, "recrack": Recracked} {
		got, err := ParseCrack(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCrack("double")
	assert.ErrorIs(t, err, ErrInvalidCrack)
}

func TestParseVerdict(t *testing.T) {
	t.Parallel()

	v, err := ParseVerdict("WIN")
	require.NoError(t, err)
	assert.Equal(t, Win, v)

	v, err = ParseVerdict("lost")
	require.NoError(t, err)
	assert.Equal(t, Loss, v)

	_, err = ParseVerdict("draw")
	assert.ErrorIs(t, err, ErrInvalidVerdict)
}

func TestMultipliers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, []int{Standard.Multiplier(), NoSchneider.Multiplier(), Schwarz.Multiplier()})
	assert.Equal(t, []int{1, 2, 4}, []int{NoCrack.Multiplier(), Cracked.Multiplier(), Recracked.Multiplier()})
}

func TestRuleTableCoversEveryOutcome(t *testing.T) {
	t.Parallel()

	for _, v := range []Verdict{Win, Loss} {
		for _, g := range []Grade{Standard, NoSchneider, Schwarz} {
			_, ok := lookupRule(v, g)
			require.True(t, ok, "%s/%s", v, g)
		}
	}
}

func TestRulePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verdict Verdict
		grade   Grade
		want    int
	}{
		{Win, Standard, 1},
		{Win, NoSchneider, 2},
		{Win, Schwarz, 3},
		{Loss, Standard, 2},
		{Loss, NoSchneider, 4},
		{Loss, Schwarz, 3},
	}

	for _, tt := range tests {
		t.Run(tt.verdict.String()+"/"+tt.grade.String(), func(t *testing.T) {
			r, ok := lookupRule(tt.verdict, tt.grade)
			require.True(t, ok)
			assert.Equal(t, tt.want, r.points(tt.grade))
		})
	}
}

func TestAlone(t *testing.T) {
	t.Parallel()

	assert.True(t, Outcome{PickerID: 1}.Alone())
	assert.True(t, Outcome{PickerID: 1, PartnerID: 1}.Alone())
	assert.False(t, Outcome{PickerID: 1, PartnerID: 2}.Alone())
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(game.DefaultStakes())
	require.NoError(t, err)

	schedule := engine.Schedule()
	require.Len(t, schedule, len(rules))

	byKey := make(map[ruleKey]Payout, len(schedule))
	for _, p := range schedule {
		byKey[ruleKey{verdict: p.Verdict, grade: p.Grade}] = p

		partnered := p.Picker.Add(p.Partner).Add(p.Opponent.Mul(decimal.NewFromInt(3)))
		assert.True(t, partnered.IsZero(), "%s %s partnered sums to %s", p.Verdict, p.Grade, partnered)
		alone := p.AlonePicker.Add(p.AloneOpponent.Mul(decimal.NewFromInt(4)))
		assert.True(t, alone.IsZero(), "%s %s alone sums to %s", p.Verdict, p.Grade, alone)
	}

	win := byKey[ruleKey{Win, Standard}]
	assert.Equal(t, "0.50", win.Picker.StringFixed(2))
	assert.Equal(t, "0.25", win.Partner.StringFixed(2))
	assert.Equal(t, "-0.25", win.Opponent.StringFixed(2))
	assert.Equal(t, "1.00", win.AlonePicker.StringFixed(2))

	schwarz := byKey[ruleKey{Loss, Schwarz}]
	assert.Equal(t, "-2.25", schwarz.Picker.StringFixed(2))
	assert.True(t, schwarz.Partner.IsZero())
	assert.Equal(t, "0.75", schwarz.Opponent.StringFixed(2))
	assert.Equal(t, "-3.00", schwarz.AlonePicker.StringFixed(2))
	assert.NotEmpty(t, schwarz.Note)
}
