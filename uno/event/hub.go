package event

// Hub holds the emitters of a single game. Listeners registered on one hub
// never hear about another game.
type Hub struct {
	CardPlayed      *cardPlayedEmitter
	FirstCardPlayed *firstCardPlayedEmitter
	CardsDrawn      *cardsDrawnEmitter
	PlayerPassed    *playerPassedEmitter
	TurnSkipped     *turnSkippedEmitter
	TurnReversed    *turnReversedEmitter
	PileRecycled    *pileRecycledEmitter
	GameWon         *gameWonEmitter
}

func NewHub() *Hub {
	return &Hub{
		CardPlayed:      &cardPlayedEmitter{},
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardsDrawn:      &cardsDrawnEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		TurnSkipped:     &turnSkippedEmitter{},
		TurnReversed:    &turnReversedEmitter{},
		PileRecycled:    &pileRecycledEmitter{},
		GameWon:         &gameWonEmitter{},
	}
}

// AddListener registers listener on every emitter whose listener interface it
// implements.
func (h *Hub) AddListener(listener interface{}) {
	if l, ok := listener.(CardPlayedListener); ok {
		h.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(FirstCardPlayedListener); ok {
		h.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		h.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		h.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		h.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnReversedListener); ok {
		h.TurnReversed.AddListener(l)
	}
	if l, ok := listener.(PileRecycledListener); ok {
		h.PileRecycled.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		h.GameWon.AddListener(l)
	}
}
