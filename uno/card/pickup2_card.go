package card

import (
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

const pickup2Amount = 2

type Pickup2Card struct {
	base
}

func NewPickup2Card(color color.Color, number int) Pickup2Card {
	return Pickup2Card{base: base{color: color, number: number}}
}

func (c Pickup2Card) Kind() Kind {
	return KindPickup2
}

func (c Pickup2Card) PickupAmount() int {
	return pickup2Amount
}

func (c Pickup2Card) Matches(candidate Card) bool {
	return c.sameColor(candidate)
}

func (c Pickup2Card) Actions() []action.Action {
	return []action.Action{
		action.NewDrawCardsAction(pickup2Amount),
	}
}

func (c Pickup2Card) Equal(other Card) bool {
	return equal(c, other)
}

func (c Pickup2Card) String() string {
	return c.color.Paint("+2!")
}
