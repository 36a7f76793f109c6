package game

import (
	"github.com/ratel-online/unoplus/uno/card"
)

type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// Player owns a hand. Humans get their moves from the front end; computers
// pick the first playable card.
type Player struct {
	name string
	kind PlayerKind
	deck *Deck
}

func NewPlayer(name string, kind PlayerKind) *Player {
	return &Player{
		name: name,
		kind: kind,
		deck: NewDeck(),
	}
}

func NewHumanPlayer(name string) *Player {
	return NewPlayer(name, Human)
}

func NewComputerPlayer(name string) *Player {
	return NewPlayer(name, Computer)
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Kind() PlayerKind {
	return p.kind
}

func (p *Player) Deck() *Deck {
	return p.deck
}

// IsPlayable reports whether moves for this player come from outside the engine.
func (p *Player) IsPlayable() bool {
	return p.kind == Human
}

func (p *Player) HasWon() bool {
	return p.deck.Empty()
}

// SelectMove removes and returns the first card in hand order that can go on
// putdownPile. It returns nil for humans and when nothing matches.
func (p *Player) SelectMove(putdownPile *Deck) card.Card {
	if p.kind != Computer {
		return nil
	}
	index := firstPlayable(p.deck, putdownPile.Top())
	if index < 0 {
		return nil
	}
	selected, _ := p.deck.Remove(index)
	return selected
}

func (p *Player) String() string {
	return p.name
}
