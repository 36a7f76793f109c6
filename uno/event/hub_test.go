package event_test

import (
	"testing"

	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/card/color"
	"github.com/ratel-online/unoplus/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	hub := event.NewHub()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	hub.CardPlayed.AddListener(listenerOne)
	hub.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewPickup4Card(color.Red, card.NoNumber),
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewPickup2Card(color.Green, card.NoNumber),
		},
	}

	for _, payload := range payloads {
		hub.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestAddListenerRegistersEveryEvent(t *testing.T) {
	hub := event.NewHub()
	listener := event.NewDummyListener()
	hub.AddListener(listener)

	hub.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.NewPlainCard(color.Red, 1)})
	hub.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "A", Card: card.NewPlainCard(color.Red, 2)})
	hub.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: "B", Cards: []card.Card{card.NewPlainCard(color.Blue, 3)}, Forced: true})
	hub.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "B"})
	hub.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "C"})
	hub.TurnReversed.Emit(event.TurnReversedPayload{Direction: -1})
	hub.PileRecycled.Emit(event.PileRecycledPayload{Amount: 12})
	hub.GameWon.Emit(event.GameWonPayload{PlayerName: "A"})

	require.Equal(t, []interface{}{
		event.FirstCardPlayedPayload{Card: card.NewPlainCard(color.Red, 1)},
		event.CardPlayedPayload{PlayerName: "A", Card: card.NewPlainCard(color.Red, 2)},
		event.CardsDrawnPayload{PlayerName: "B", Cards: []card.Card{card.NewPlainCard(color.Blue, 3)}, Forced: true},
		event.PlayerPassedPayload{PlayerName: "B"},
		event.TurnSkippedPayload{PlayerName: "C"},
		event.TurnReversedPayload{Direction: -1},
		event.PileRecycledPayload{Amount: 12},
		event.GameWonPayload{PlayerName: "A"},
	}, listener.ReceivedPayloads())
}

func TestHubsAreIndependent(t *testing.T) {
	first := event.NewHub()
	second := event.NewHub()
	listener := event.NewDummyListener()
	first.AddListener(listener)

	second.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Nobody"})

	require.Empty(t, listener.ReceivedPayloads())
}

func TestAddListenerIgnoresUnrelatedValues(t *testing.T) {
	hub := event.NewHub()
	hub.AddListener("not a listener")
	hub.GameWon.Emit(event.GameWonPayload{PlayerName: "A"})
}
