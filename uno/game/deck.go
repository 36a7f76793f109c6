package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/card/color"
)

// Deck is an ordered stack of cards; the last element is the top.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards ...card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, 0, len(cards))}
	deck.cards = append(deck.cards, cards...)
	return deck
}

// NewFullDeck returns an unshuffled standard deck of 104 cards.
func NewFullDeck() *Deck {
	cards := make([]card.Card, 0, 104)
	for _, cardColor := range color.Colors {
		cards = append(cards, createColorCards(cardColor)...)
		cards = append(cards, card.NewPickup4Card(cardColor, card.NoNumber))
	}
	return NewDeck(cards...)
}

func createColorCards(cardColor color.Color) []card.Card {
	skipCard := card.NewSkipCard(cardColor, card.NoNumber)
	reverseCard := card.NewReverseCard(cardColor, card.NoNumber)
	pickup2Card := card.NewPickup2Card(cardColor, card.NoNumber)

	cards := []card.Card{
		card.NewPlainCard(cardColor, 0),
		skipCard, skipCard,
		reverseCard, reverseCard,
		pickup2Card, pickup2Card,
	}

	for number := 1; number <= 9; number++ {
		plainCard := card.NewPlainCard(cardColor, number)
		cards = append(cards, plainCard, plainCard)
	}

	return cards
}

// Shuffle permutes the deck uniformly. A nil r uses the process-wide source.
func (d *Deck) Shuffle(r *rand.Rand) {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if r == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	r.Shuffle(len(d.cards), swap)
}

// Pick removes the top amount cards and returns them most recent first.
// The deck is left untouched when it fails.
func (d *Deck) Pick(amount int) ([]card.Card, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: cannot pick %d cards", consts.ErrorsInvalidArgument, amount)
	}
	if amount > len(d.cards) {
		return nil, fmt.Errorf("%w: cannot pick %d cards from %d", consts.ErrorsEmptyPile, amount, len(d.cards))
	}
	picked := make([]card.Card, 0, amount)
	for i := len(d.cards) - 1; i >= len(d.cards)-amount; i-- {
		picked = append(picked, d.cards[i])
	}
	d.cards = d.cards[:len(d.cards)-amount]
	return picked, nil
}

func (d *Deck) PickOne() (card.Card, error) {
	cards, err := d.Pick(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

func (d *Deck) Add(c card.Card) {
	d.cards = append(d.cards, c)
}

// AddAll pushes cards in order, so the last one ends up on top.
func (d *Deck) AddAll(cards []card.Card) {
	d.cards = append(d.cards, cards...)
}

// Bury slides cards under the bottom of the deck, keeping their order.
func (d *Deck) Bury(cards []card.Card) {
	buried := make([]card.Card, 0, len(cards)+len(d.cards))
	buried = append(buried, cards...)
	d.cards = append(buried, d.cards...)
}

func (d *Deck) Top() card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[len(d.cards)-1]
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// IndexOf returns the position of the first card equal to c, or -1.
func (d *Deck) IndexOf(c card.Card) int {
	for index, candidate := range d.cards {
		if candidate.Equal(c) {
			return index
		}
	}
	return -1
}

func (d *Deck) Remove(index int) (card.Card, error) {
	if index < 0 || index >= len(d.cards) {
		return nil, fmt.Errorf("%w: no card at position %d", consts.ErrorsInvalidArgument, index)
	}
	removed := d.cards[index]
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	return removed, nil
}

func (d *Deck) String() string {
	return fmt.Sprint(d.cards)
}
