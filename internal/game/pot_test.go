package game

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustPot(t *testing.T, amounts ...string) Pot {
	t.Helper()
	entries := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		entries[i] = d(a)
	}
	p, err := NewPot(entries...)
	require.NoError(t, err)
	return p
}

func TestPotAppendAndTotal(t *testing.T) {
	t.Parallel()

	var p Pot
	assert.True(t, p.Empty())
	assert.True(t, p.Total().IsZero())

	require.NoError(t, p.Append(d("1.25")))
	require.NoError(t, p.Append(d("2.50")))

	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Total().Equal(d("3.75")), "total was %s", p.Total())
}

func TestPotRejectsNonPositiveEntries(t *testing.T) {
	t.Parallel()

	var p Pot
	assert.ErrorIs(t, p.Append(decimal.Zero), ErrNonPositiveEntry)
	assert.ErrorIs(t, p.Append(d("-0.25")), ErrNonPositiveEntry)
	assert.True(t, p.Empty())

	_, err := NewPot(d("1.00"), d("0"))
	assert.ErrorIs(t, err, ErrNonPositiveEntry)
}

func TestPotConsumeLeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entries   []string
		count     int
		wantSum   string
		wantLeft  []string
		wantError bool
	}{
		{name: "first entry", entries: []string{"1.25", "2.00", "3.00"}, count: 1, wantSum: "1.25", wantLeft: []string{"2.00", "3.00"}},
		{name: "two entries", entries: []string{"1.25", "2.00", "3.00"}, count: 2, wantSum: "3.25", wantLeft: []string{"3.00"}},
		{name: "everything", entries: []string{"1.25", "2.00"}, count: 2, wantSum: "3.25", wantLeft: []string{}},
		{name: "zero count", entries: []string{"1.25"}, count: 0, wantError: true},
		{name: "past the end", entries: []string{"1.25"}, count: 2, wantError: true},
		{name: "empty pot", entries: nil, count: 1, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPot(t, tt.entries...)
			before := p.Clone()

			got, err := p.ConsumeLeading(tt.count)
			if tt.wantError {
				require.ErrorIs(t, err, ErrConsumeRange)
				assert.True(t, p.Equal(before), "failed consume must not change the pot")
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.wantSum)), "sum was %s", got)
			assert.True(t, p.Equal(mustPot(t, tt.wantLeft...)), "left %v", p.Entries())
		})
	}
}

func TestPotAddToLast(t *testing.T) {
	t.Parallel()

	var p Pot
	assert.ErrorIs(t, p.AddToLast(d("0.25")), ErrEmptyPot)

	p = mustPot(t, "1.00", "2.00")
	require.NoError(t, p.AddToLast(d("0.50")))
	assert.True(t, p.Equal(mustPot(t, "1.00", "2.50")))
}

func TestPotCloneIsIndependent(t *testing.T) {
	t.Parallel()

	p := mustPot(t, "1.00")
	c := p.Clone()
	require.NoError(t, c.AddToLast(d("1.00")))

	assert.True(t, p.Equal(mustPot(t, "1.00")))
	assert.True(t, c.Equal(mustPot(t, "2.00")))
}

func TestPotJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Pot{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var p Pot
	require.NoError(t, json.Unmarshal([]byte(`[1.25, "0.75"]`), &p))
	assert.True(t, p.Equal(mustPot(t, "1.25", "0.75")))

	var bad Pot
	assert.Error(t, json.Unmarshal([]byte(`[1.25, -1]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &bad))
}
