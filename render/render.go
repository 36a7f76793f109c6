package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/game"
	"github.com/ratel-online/unoplus/uno/msg"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

func Welcome(session *model.Session) error {
	return session.WriteString(msg.Message.Welcome())
}

func HomeOptions(session *model.Session) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%d.New game\n", consts.OptionNewGame))
	buf.WriteString(fmt.Sprintf("%d.Exit\n", consts.OptionExit))
	return session.WriteString(buf.String())
}

func Board(session *model.Session, state game.State) error {
	buf := bytes.Buffer{}
	buf.WriteString(state.String())
	buf.WriteString("\n")
	if len(state.SpecialPile) > 0 {
		buf.WriteString(fmt.Sprintf("Special pile: %s\n", state.SpecialPile))
	}
	return session.WriteString(buf.String())
}

// CardOptions lists hand under letter labels followed by the draw and pass
// inputs, and returns which card each label stands for.
func CardOptions(session *model.Session, hand []card.Card, canPass bool) (map[string]card.Card, error) {
	sequence := runeSequence{}
	options := make(map[string]card.Card, len(hand))
	buf := bytes.Buffer{}
	buf.WriteString("Select a card to play:\n")
	for _, c := range hand {
		label := string(sequence.next())
		options[label] = c
		buf.WriteString(fmt.Sprintf("%s %s\n", label, c))
	}
	buf.WriteString(fmt.Sprintf("%s draw a card\n", consts.InputDraw))
	if canPass {
		buf.WriteString(fmt.Sprintf("%s pass\n", consts.InputPass))
	}
	return options, session.WriteString(buf.String())
}
