package msg

import (
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/card/color"
	"github.com/ratel-online/unoplus/uno/event"
)

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return fmt.Sprintln(strings.Join(lines, "\n"))
}

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(playerName string, cards []card.Card) string {
	return Sprintfln("%s, you drew %s!", playerName, cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerForcedToDraw(playerName string, amount int) string {
	return Sprintfln("%s has to pick up %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(direction int) string {
	if direction < 0 {
		return Sprintfln("Turn order has been reversed! Play goes <-")
	}
	return Sprintfln("Turn order has been reversed! Play goes ->")
}

func (m MessageWriter) PileRecycled(amount int) string {
	return Sprintfln("%d played cards were shuffled back into the draw pile", amount)
}

func (m MessageWriter) PileExhausted() string {
	return Sprintfln("The draw pile ran out. Nobody wins this round.")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Green.Paint("O"),
		color.Blue.Paint("+"),
		color.Red.Paint("+"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

// Listener writes a message for every game event. Cards drawn by a player in
// reveal are shown face up; everyone else only sees how many were drawn.
type Listener struct {
	out    io.Writer
	reveal map[string]bool
}

func NewListener(out io.Writer, reveal ...string) *Listener {
	l := &Listener{out: out, reveal: make(map[string]bool, len(reveal))}
	for _, name := range reveal {
		l.reveal[name] = true
	}
	return l
}

func (l *Listener) write(message string) {
	_, _ = io.WriteString(l.out, message)
}

func (l *Listener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.write(Message.FirstCardPlayed(payload.Card))
}

func (l *Listener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.write(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (l *Listener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Forced {
		l.write(Message.PlayerForcedToDraw(payload.PlayerName, len(payload.Cards)))
	}
	if l.reveal[payload.PlayerName] {
		l.write(Message.HumanPlayerDrewCards(payload.PlayerName, payload.Cards))
		return
	}
	if !payload.Forced {
		l.write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
	}
}

func (l *Listener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.write(Message.PlayerPassed(payload.PlayerName))
}

func (l *Listener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.write(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (l *Listener) OnTurnReversed(payload event.TurnReversedPayload) {
	l.write(Message.TurnOrderReversed(payload.Direction))
}

func (l *Listener) OnPileRecycled(payload event.PileRecycledPayload) {
	l.write(Message.PileRecycled(payload.Amount))
}

func (l *Listener) OnGameWon(payload event.GameWonPayload) {
	l.write(Message.WinnerFound(payload.PlayerName))
}
