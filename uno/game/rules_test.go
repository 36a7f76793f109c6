package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/card/color"
	"github.com/ratel-online/unoplus/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		expectedResult bool
	}{
		{
			description:    "pickup4_card_is_always_playable_on_a_pickup4",
			candidateCard:  card.NewPlainCard(color.Red, 2),
			lastPlayedCard: card.NewPickup4Card(color.Green, card.NoNumber),
			expectedResult: true,
		},
		{
			description:    "pickup4_card_needs_a_colour_match_on_a_skip",
			candidateCard:  card.NewPickup4Card(color.Red, card.NoNumber),
			lastPlayedCard: card.NewSkipCard(color.Blue, card.NoNumber),
			expectedResult: false,
		},
		{
			description:    "plain_cards_with_same_color",
			candidateCard:  card.NewPlainCard(color.Blue, 5),
			lastPlayedCard: card.NewPlainCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "plain_cards_with_same_number",
			candidateCard:  card.NewPlainCard(color.Red, 7),
			lastPlayedCard: card.NewPlainCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "plain_cards_with_different_color_and_number",
			candidateCard:  card.NewPlainCard(color.Red, 5),
			lastPlayedCard: card.NewPlainCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "reverse_cards_of_different_colors",
			candidateCard:  card.NewReverseCard(color.Red, card.NoNumber),
			lastPlayedCard: card.NewReverseCard(color.Blue, card.NoNumber),
			expectedResult: false,
		},
		{
			description:    "skip_then_card_with_same_color",
			candidateCard:  card.NewPlainCard(color.Blue, 7),
			lastPlayedCard: card.NewSkipCard(color.Blue, card.NoNumber),
			expectedResult: true,
		},
		{
			description:    "pickup2_then_card_with_different_color",
			candidateCard:  card.NewPickup2Card(color.Red, card.NoNumber),
			lastPlayedCard: card.NewPickup2Card(color.Blue, card.NoNumber),
			expectedResult: false,
		},
		{
			description:    "plain_then_action_card_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue, card.NoNumber),
			lastPlayedCard: card.NewPlainCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "empty_pile_accepts_anything",
			candidateCard:  card.NewPlainCard(color.Red, 7),
			lastPlayedCard: nil,
			expectedResult: true,
		},
		{
			description:    "no_card_is_never_playable",
			candidateCard:  nil,
			lastPlayedCard: card.NewPickup4Card(color.Green, card.NoNumber),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, game.DefaultRules().Validate())
	require.Equal(t, 7, game.DefaultRules().StartingHandSize)
	require.False(t, game.DefaultRules().RecycleDiscards)

	err := game.Rules{StartingHandSize: 0}.Validate()
	require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
}
