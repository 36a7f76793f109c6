package card

import (
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

type SkipCard struct {
	base
}

func NewSkipCard(color color.Color, number int) SkipCard {
	return SkipCard{base: base{color: color, number: number}}
}

func (c SkipCard) Kind() Kind {
	return KindSkip
}

func (c SkipCard) PickupAmount() int {
	return 0
}

func (c SkipCard) Matches(candidate Card) bool {
	return c.sameColor(candidate)
}

func (c SkipCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
	}
}

func (c SkipCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c SkipCard) String() string {
	return c.color.Paint("(/)")
}
