package state_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/unoplus/config"
	"github.com/ratel-online/unoplus/database"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/state"
	"github.com/stretchr/testify/require"
)

func computersOnly() config.Config {
	c := config.Default()
	c.HumanNames = nil
	c.ComputerPlayers = 3
	c.AIDelay = 0
	c.Seed = 7
	c.RecycleDiscards = true
	return c
}

func TestRunExitsFromHome(t *testing.T) {
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader("7\nnope\n2\n"), &out, config.Default())

	require.NoError(t, state.Run(session))

	require.Contains(t, out.String(), "WELCOME TO")
	require.Equal(t, 3, strings.Count(out.String(), "1.New game"))
	require.Equal(t, 2, strings.Count(out.String(), "Input invalid."))
}

func TestRunStopsWhenInputEnds(t *testing.T) {
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader(""), &out, config.Default())

	require.NoError(t, state.Run(session))
}

func TestRunPlaysComputerGame(t *testing.T) {
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader("1\n2\n"), &out, computersOnly())

	require.NoError(t, state.Run(session))

	text := out.String()
	require.Contains(t, text, "First card is")
	require.True(t, strings.Contains(text, "wins!") || strings.Contains(text, "draw pile ran out"), text)
	require.Equal(t, 2, strings.Count(text, "1.New game"))
	require.Empty(t, database.GetTables())
}

func TestRunHumanTurn(t *testing.T) {
	c := computersOnly()
	c.HumanNames = []string{"Ravi"}
	c.ComputerPlayers = 2
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader("1\nzz\n-\n+\n-\nexit\n"), &out, c)

	require.NoError(t, state.Run(session))

	text := out.String()
	require.Contains(t, text, "It's your turn, Ravi!")
	require.Contains(t, text, "Input invalid.")
	require.Contains(t, text, "must draw before passing")
	require.Contains(t, text, "Ravi, you drew")
	require.Contains(t, text, "Ravi passed!")
	require.Empty(t, database.GetTables())
}
