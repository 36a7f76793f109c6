package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unoplus/uno/card"
)

// State is a read-only snapshot for rendering, taken from one player's seat.
type State struct {
	LastPlayedCard   card.Card
	SpecialPile      []card.Card
	DrawPileSize     int
	ViewerHand       []card.Card
	CurrentPlayer    string
	Direction        int
	PlayerSequence   []string
	PlayerHandCounts map[string]int
	Winner           string
}

func (g *Game) ExtractState(viewer *Player) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make(map[string]int, len(g.players))
	for _, player := range g.players {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.Deck().Size()
	}

	state := State{
		LastPlayedCard:   g.putdownPile.Top(),
		SpecialPile:      g.specialPile.Cards(),
		DrawPileSize:     g.drawPile.Size(),
		CurrentPlayer:    g.CurrentPlayer().Name(),
		Direction:        g.Direction(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
	}
	if viewer != nil {
		state.ViewerHand = viewer.Deck().Cards()
	}
	if g.winner != nil {
		state.Winner = g.winner.Name()
	}
	return state
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", s.DrawPileSize))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if playerName == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	arrow := "->"
	if s.Direction < 0 {
		arrow = "<-"
	}
	lines = append(lines, fmt.Sprintf("Turn order %s %s", arrow, strings.Join(playerStatuses, ", ")))

	if s.ViewerHand != nil {
		lines = append(lines, fmt.Sprintf("Your hand: %s", s.ViewerHand))
	}
	return strings.Join(lines, "\n")
}
