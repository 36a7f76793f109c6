package card

import (
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/card/color"
)

const pickup4Amount = 4

// Pickup4Card is wild: anything may be placed on it.
type Pickup4Card struct {
	base
}

func NewPickup4Card(color color.Color, number int) Pickup4Card {
	return Pickup4Card{base: base{color: color, number: number}}
}

func (c Pickup4Card) Kind() Kind {
	return KindPickup4
}

func (c Pickup4Card) PickupAmount() int {
	return pickup4Amount
}

func (c Pickup4Card) Matches(candidate Card) bool {
	return true
}

func (c Pickup4Card) Actions() []action.Action {
	return []action.Action{
		action.NewDrawCardsAction(pickup4Amount),
	}
}

func (c Pickup4Card) Equal(other Card) bool {
	return equal(c, other)
}

func (c Pickup4Card) String() string {
	return c.color.Paint("+4!")
}
