package game_test

import (
	"testing"

	"github.com/ratel-online/unoplus/uno/game"
	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Direction())
	cycler.Reverse()
	assert.Equal(t, -1, cycler.Direction())
	assert.Equal(t, 3, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Direction())
	assert.Equal(t, 0, cycler.Next())
}

func TestSkip(t *testing.T) {
	t.Run("moves_two_seats_once", func(t *testing.T) {
		cycler := game.NewCycler(3)
		cycler.Skip()
		assert.True(t, cycler.Skipping())
		assert.Equal(t, 2, cycler.Next())
		assert.False(t, cycler.Skipping())
		assert.Equal(t, 0, cycler.Next())
	})

	t.Run("wraps_backwards", func(t *testing.T) {
		cycler := game.NewCycler(3)
		cycler.Reverse()
		cycler.Skip()
		assert.Equal(t, 1, cycler.Next())
	})

	t.Run("returns_to_same_seat_with_two_players", func(t *testing.T) {
		cycler := game.NewCycler(2)
		cycler.Skip()
		assert.Equal(t, 0, cycler.Next())
	})
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3)
	assert.Equal(t, 1, cycler.Peek())
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek())
	cycler.Skip()
	assert.Equal(t, 2, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
}
