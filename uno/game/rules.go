package game

import (
	"fmt"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/card"
)

// Playable reports whether candidateCard may go on lastPlayedCard. The rule
// belongs to the card on top; an empty pile accepts anything.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard == nil {
		return false
	}
	if lastPlayedCard == nil {
		return true
	}
	return lastPlayedCard.Matches(candidateCard)
}

func firstPlayable(hand *Deck, lastPlayedCard card.Card) int {
	for index, candidateCard := range hand.cards {
		if Playable(candidateCard, lastPlayedCard) {
			return index
		}
	}
	return -1
}

// Rules are the per-game switches.
type Rules struct {
	StartingHandSize int  `json:"startingHandSize"`
	RecycleDiscards  bool `json:"recycleDiscards"` // refill the draw pile from the putdown pile instead of failing
}

func DefaultRules() Rules {
	return Rules{
		StartingHandSize: consts.StartingHandSize,
		RecycleDiscards:  false,
	}
}

func (r Rules) Validate() error {
	if r.StartingHandSize <= 0 {
		return fmt.Errorf("%w: starting hand size must be positive", consts.ErrorsInvalidArgument)
	}
	return nil
}
