package card

import (
	"fmt"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

// NoNumber is the rank carried by special cards that have no printed number.
const NoNumber = -1

// Kind tags a card so a front end can pick a label or icon without
// depending on the matching rules.
type Kind int

const (
	KindPlain Kind = iota
	KindSkip
	KindReverse
	KindPickup2
	KindPickup4
)

var kindNames = map[Kind]string{
	KindPlain:   "plain",
	KindSkip:    "skip",
	KindReverse: "reverse",
	KindPickup2: "pickup2",
	KindPickup4: "pickup4",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Card is implemented only by the kinds in this package.
//
// Matches reports whether candidate may be placed on top of this card.
// Actions lists the effects the game applies when this card is played.
type Card interface {
	Kind() Kind
	Number() int
	Color() color.Color
	PickupAmount() int
	Matches(candidate Card) bool
	Actions() []action.Action
	Equal(other Card) bool
	String() string

	sealed()
}

type base struct {
	color  color.Color
	number int
}

func (b base) Number() int {
	return b.number
}

func (b base) Color() color.Color {
	return b.color
}

func (b base) sameColor(other Card) bool {
	return other != nil && b.color == other.Color()
}

func (base) sealed() {}

func equal(c Card, other Card) bool {
	return other != nil &&
		c.Kind() == other.Kind() &&
		c.Color() == other.Color() &&
		c.Number() == other.Number()
}

var constructors = map[Kind]func(color.Color, int) Card{
	KindPlain:   func(c color.Color, n int) Card { return NewPlainCard(c, n) },
	KindSkip:    func(c color.Color, n int) Card { return NewSkipCard(c, n) },
	KindReverse: func(c color.Color, n int) Card { return NewReverseCard(c, n) },
	KindPickup2: func(c color.Color, n int) Card { return NewPickup2Card(c, n) },
	KindPickup4: func(c color.Color, n int) Card { return NewPickup4Card(c, n) },
}

// New builds a card of the given kind.
func New(kind Kind, cardColor color.Color, number int) (Card, error) {
	constructor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown card kind %d", consts.ErrorsInvalidArgument, kind)
	}
	if !cardColor.Valid() {
		return nil, fmt.Errorf("%w: unknown color %d", consts.ErrorsInvalidArgument, cardColor)
	}
	return constructor(cardColor, number), nil
}
