package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(players []Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

func TestDefaultPlayers(t *testing.T) {
	t.Parallel()

	players := DefaultPlayers()
	require.Len(t, players, DefaultPlayerCount)
	for i, p := range players {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, DefaultName(i+1), p.Name)
		assert.True(t, p.Balance.IsZero())
		assert.True(t, p.Active)
	}
}

func TestAddPlayer(t *testing.T) {
	t.Parallel()

	t.Run("assigns next id and sits when table is full", func(t *testing.T) {
		players, p, err := AddPlayer(DefaultPlayers(), "")
		require.NoError(t, err)
		assert.Equal(t, 6, p.ID)
		assert.Equal(t, "Player 6", p.Name)
		assert.False(t, p.Active, "five are already playing")
		assert.Len(t, players, 6)
	})

	t.Run("ids are monotonic after removal", func(t *testing.T) {
		players, err := RemovePlayer(DefaultPlayers(), 3)
		require.NoError(t, err)
		players, p, err := AddPlayer(players, "")
		require.NoError(t, err)
		assert.Equal(t, 6, p.ID)
		assert.True(t, p.Active, "only four were playing")
		assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(players))
	})

	t.Run("rejects an eleventh player", func(t *testing.T) {
		players := DefaultPlayers()
		var err error
		for len(players) < MaxPlayers {
			players, _, err = AddPlayer(players, "")
			require.NoError(t, err)
		}
		_, _, err = AddPlayer(players, "")
		assert.ErrorIs(t, err, ErrRosterFull)
	})

	t.Run("takes a trimmed name", func(t *testing.T) {
		_, p, err := AddPlayer(DefaultPlayers(), "  Frank ")
		require.NoError(t, err)
		assert.Equal(t, "Frank", p.Name)
	})

	t.Run("rejects a blank name before seating", func(t *testing.T) {
		in := DefaultPlayers()
		out, _, err := AddPlayer(in, "   ")
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Len(t, out, DefaultPlayerCount)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		in := DefaultPlayers()
		out, _, err := AddPlayer(in, "")
		require.NoError(t, err)
		out[0].Name = "changed"
		assert.Equal(t, "Player 1", in[0].Name)
	})
}

func TestRenamePlayer(t *testing.T) {
	t.Parallel()

	in := DefaultPlayers()
	out, err := RenamePlayer(in, 2, "  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", out[1].Name)
	assert.Equal(t, "Player 2", in[1].Name)

	_, err = RenamePlayer(in, 2, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = RenamePlayer(in, 42, "Bob")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestRemovePlayer(t *testing.T) {
	t.Parallel()

	out, err := RemovePlayer(DefaultPlayers(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, ids(out))

	_, err = RemovePlayer(DefaultPlayers(), 9)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestActiveAndSitters(t *testing.T) {
	t.Parallel()

	players := DefaultPlayers()
	players[1].Active = false
	players[3].Active = false

	assert.Equal(t, []int{1, 3, 5}, ids(ActivePlayers(players)))
	assert.Equal(t, []int{2, 4}, ids(Sitters(players)))
	assert.True(t, players[1].Sitting())
}
