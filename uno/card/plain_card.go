package card

import (
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

type PlainCard struct {
	base
}

func NewPlainCard(color color.Color, number int) PlainCard {
	return PlainCard{base: base{color: color, number: number}}
}

func (c PlainCard) Kind() Kind {
	return KindPlain
}

func (c PlainCard) PickupAmount() int {
	return 0
}

func (c PlainCard) Matches(candidate Card) bool {
	return c.sameColor(candidate) || (candidate != nil && c.number == candidate.Number())
}

func (c PlainCard) Actions() []action.Action {
	return []action.Action{}
}

func (c PlainCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c PlainCard) String() string {
	return c.color.Paintf("[%d]", c.number)
}
