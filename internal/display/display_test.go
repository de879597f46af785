package display

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/history"
	"github.com/lox/sheepshead/internal/settlement"
)

func plainStyles() Styles {
	return NewStyles(NewRenderer(io.Discard, false))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestScoreboard(t *testing.T) {
	t.Parallel()

	players := game.DefaultPlayers()
	players = append(players, game.Player{ID: 6, Name: "Gretchen", Balance: d("-1.5")})
	players = game.ComputeActive(players, 2)
	players[0].Balance = d("2.25")

	pot, err := game.NewPot(d("1.25"), d("1.5"))
	require.NoError(t, err)

	out := Scoreboard(plainStyles(), players, pot, 2)
	assert.NotContains(t, out, "\x1b[", "no escape codes without colour")

	lines := strings.Split(out, "\n")
	var dealerLine, gretchenLine string
	for _, l := range lines {
		if strings.Contains(l, "Player 2") {
			dealerLine = l
		}
		if strings.Contains(l, "Gretchen") {
			gretchenLine = l
		}
	}
	assert.True(t, strings.HasPrefix(dealerLine, "D "), "dealer marked: %q", dealerLine)
	assert.Contains(t, dealerLine, "sitting")
	assert.Contains(t, gretchenLine, "-$1.50")
	assert.Contains(t, out, "+$2.25")
	assert.Contains(t, out, "Pot: 2 ($2.75)")
	assert.Contains(t, out, "$1.25 + $1.50")
}

func TestPotLineEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "No pot", PotLine(plainStyles(), game.Pot{}))
}

func TestHistory(t *testing.T) {
	t.Parallel()

	s := plainStyles()
	players := game.DefaultPlayers()
	assert.Contains(t, History(s, nil, players, 0, time.UTC), "No hands played yet")

	at := time.Date(2024, 3, 9, 20, 15, 0, 0, time.UTC)
	entries := []history.Entry{
		{Description: "3 Kings: Player 2", Timestamp: at, Changes: map[int]decimal.Decimal{2: d("1"), 1: d("-0.25"), 9: d("-0.25")}},
		{Description: "Passed - Pot Added", Timestamp: at.Add(-time.Minute)},
		{Description: "Picker Won", Timestamp: at.Add(-2 * time.Minute)},
	}

	out := History(s, entries, players, 2, time.UTC)
	assert.Contains(t, out, "20:15  3 Kings: Player 2")
	assert.Contains(t, out, "Player 1 -$0.25, Player 2 +$1.00, #9 -$0.25")
	assert.Contains(t, out, "Passed - Pot Added")
	assert.NotContains(t, out, "Picker Won")
	assert.Contains(t, out, "1 older")
}

func TestRules(t *testing.T) {
	t.Parallel()

	engine, err := settlement.NewEngine(game.DefaultStakes())
	require.NoError(t, err)

	out := Rules(plainStyles(), engine.Stakes(), engine.Schedule())
	assert.Contains(t, out, "Card points (120 total)")
	assert.Contains(t, out, "1. Queen of Clubs")
	assert.Contains(t, out, "Jack of Diamonds (partner)")
	assert.Contains(t, out, "everyone pays $0.25")
	assert.Contains(t, out, "win standard")
	assert.Contains(t, out, "(Rule 6: Pkr pays all)")
	assert.Contains(t, out, "-2.25")
}

func TestColourRenderer(t *testing.T) {
	t.Parallel()

	r := NewRenderer(io.Discard, true)
	s := NewStyles(r)
	// colour depends on the detected terminal; the text must survive either way
	assert.Contains(t, s.Money(d("-0.5")), "-$0.50")
}

func TestFailure(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("picker: %w", errors.New("unknown player"))
	assert.Equal(t, "Error: picker: unknown player", Failure(plainStyles(), err))
}
