package card

import (
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

type ReverseCard struct {
	base
}

func NewReverseCard(color color.Color, number int) ReverseCard {
	return ReverseCard{base: base{color: color, number: number}}
}

func (c ReverseCard) Kind() Kind {
	return KindReverse
}

func (c ReverseCard) PickupAmount() int {
	return 0
}

func (c ReverseCard) Matches(candidate Card) bool {
	return c.sameColor(candidate)
}

func (c ReverseCard) Actions() []action.Action {
	return []action.Action{
		action.NewReverseTurnsAction(),
	}
}

func (c ReverseCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c ReverseCard) String() string {
	return c.color.Paint("<=>")
}
