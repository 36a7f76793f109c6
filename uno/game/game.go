package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/card"
	"github.com/ratel-online/unoplus/uno/card/action"
	"github.com/ratel-online/unoplus/uno/event"
	"github.com/sirupsen/logrus"
)

// Game is a single round of UNO++. It is not safe for concurrent use; every
// call completes its effects before returning.
type Game struct {
	id      uuid.UUID
	players []*Player
	cycler  *Cycler

	drawPile    *Deck
	putdownPile *Deck
	specialPile *Deck

	rules        Rules
	winner       *Player
	drewThisTurn bool

	events   *event.Hub
	logger   *logrus.Entry
	settings *settings
}

// New starts a game on an already shuffled and dealt draw pile. The top
// draw card is turned onto the putdown pile without applying its effect.
func New(drawPile *Deck, players []*Player, opts ...Option) (*Game, error) {
	s := newSettings(opts)
	if err := s.rules.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	if drawPile == nil || drawPile.Empty() {
		return nil, fmt.Errorf("%w: no card to start the putdown pile", consts.ErrorsEmptyPile)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	g := &Game{
		id:          id,
		players:     append([]*Player(nil), players...),
		cycler:      NewCycler(len(players)),
		drawPile:    drawPile,
		putdownPile: NewDeck(),
		specialPile: NewDeck(),
		rules:       s.rules,
		events:      event.NewHub(),
		logger:      s.logger.WithField("game", id.String()),
		settings:    s,
	}
	for _, listener := range s.listeners {
		g.events.AddListener(listener)
	}

	firstCard, _ := g.drawPile.PickOne()
	g.putdownPile.Add(firstCard)
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	g.logger.WithFields(logrus.Fields{
		"players":   len(players),
		"drawPile":  g.drawPile.Size(),
		"firstCard": firstCard.Kind().String(),
	}).Debug("game started")
	return g, nil
}

// NewStandard shuffles a full deck, deals the starting hands and starts the game.
func NewStandard(players []*Player, opts ...Option) (*Game, error) {
	s := newSettings(opts)
	if err := s.rules.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	drawPile := NewFullDeck()
	needed := s.rules.StartingHandSize*len(players) + 1
	if needed > drawPile.Size() {
		return nil, fmt.Errorf("%w: %d cards cannot deal %d to %d players and turn a first card",
			consts.ErrorsEmptyPile, drawPile.Size(), s.rules.StartingHandSize, len(players))
	}
	drawPile.Shuffle(s.rand)
	if err := Deal(drawPile, players, s.rules.StartingHandSize); err != nil {
		return nil, err
	}
	opts = append(append([]Option(nil), opts...), WithRand(s.rand))
	return New(drawPile, players, opts...)
}

// Deal gives every player amount cards from drawPile, failing before any
// card moves when the pile is too small.
func Deal(drawPile *Deck, players []*Player, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: cannot deal %d cards", consts.ErrorsInvalidArgument, amount)
	}
	if drawPile.Size() < amount*len(players) {
		return fmt.Errorf("%w: %d cards cannot deal %d to %d players", consts.ErrorsEmptyPile, drawPile.Size(), amount, len(players))
	}
	for _, player := range players {
		cards, err := drawPile.Pick(amount)
		if err != nil {
			return err
		}
		player.Deck().AddAll(cards)
	}
	return nil
}

func validatePlayers(players []*Player) error {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return fmt.Errorf("%w: need %d to %d players, got %d", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, len(players))
	}
	names := make(map[string]bool, len(players))
	for _, player := range players {
		if player == nil || player.Name() == "" {
			return fmt.Errorf("%w: every player needs a name", consts.ErrorsGamePlayersInvalid)
		}
		if names[player.Name()] {
			return fmt.Errorf("%w: duplicate player name %q", consts.ErrorsGamePlayersInvalid, player.Name())
		}
		names[player.Name()] = true
	}
	return nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

func (g *Game) DrawPile() *Deck {
	return g.drawPile
}

func (g *Game) PutdownPile() *Deck {
	return g.putdownPile
}

// SpecialPile is a display-only area. The rules never read or write it, so
// it stays empty unless a front end puts cards there; played cards stay on
// the putdown pile.
func (g *Game) SpecialPile() *Deck {
	return g.specialPile
}

func (g *Game) Events() *event.Hub {
	return g.events
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.cycler.Current()]
}

// PeekNextPlayer is the player one step along the current direction.
func (g *Game) PeekNextPlayer() *Player {
	return g.players[g.cycler.Peek()]
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

func (g *Game) IsOver() bool {
	return g.winner != nil
}

func (g *Game) Winner() *Player {
	return g.winner
}

// DrewThisTurn reports whether the current player already drew a card.
func (g *Game) DrewThisTurn() bool {
	return g.drewThisTurn
}

// SelectCard plays c from player's hand onto the putdown pile, applies its
// effect, checks for a winner and moves on to the next player.
func (g *Game) SelectCard(player *Player, c card.Card) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	top := g.putdownPile.Top()
	if !Playable(c, top) {
		return fmt.Errorf("%w: %s cannot go on %s", consts.ErrorsIllegalMove, c, top)
	}
	index := player.Deck().IndexOf(c)
	if index < 0 {
		return fmt.Errorf("%w: %s is not in %s's hand", consts.ErrorsIllegalMove, c, player.Name())
	}
	return g.playFromHand(player, index)
}

// TakeTurn plays the first matching card in player's hand, or draws a card
// and passes when there is none. It picks the card with firstPlayable rather
// than Player.SelectMove, which removes the card before checkPickup could
// refuse it.
func (g *Game) TakeTurn(player *Player) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	index := firstPlayable(player.Deck(), g.putdownPile.Top())
	if index >= 0 {
		return g.playFromHand(player, index)
	}
	if _, err := g.DrawCard(player); err != nil {
		return err
	}
	return g.Pass(player)
}

// DrawCard moves one card from the draw pile into player's hand. The turn
// does not end.
func (g *Game) DrawCard(player *Player) (card.Card, error) {
	if err := g.checkTurn(player); err != nil {
		return nil, err
	}
	if err := g.ensureDrawable(1); err != nil {
		return nil, err
	}
	drawn, err := g.drawPile.PickOne()
	if err != nil {
		return nil, err
	}
	player.Deck().Add(drawn)
	g.drewThisTurn = true
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      []card.Card{drawn},
	})
	g.logger.WithField("player", player.Name()).Debug("card drawn")
	return drawn, nil
}

// Pass ends player's turn without playing. A card must have been drawn first.
func (g *Game) Pass(player *Player) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	if !g.drewThisTurn {
		return fmt.Errorf("%w: %s must draw before passing", consts.ErrorsIllegalMove, player.Name())
	}
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.Name()})
	g.NextPlayer()
	return nil
}

// ForceDraw moves amount cards from the draw pile into target's hand. Either
// every card moves or none does.
func (g *Game) ForceDraw(target *Player, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: cannot force %d cards", consts.ErrorsInvalidArgument, amount)
	}
	if g.seat(target) < 0 {
		return fmt.Errorf("%w: %s is not at this table", consts.ErrorsInvalidArgument, target)
	}
	if err := g.ensureDrawable(amount); err != nil {
		return err
	}
	cards, err := g.drawPile.Pick(amount)
	if err != nil {
		return err
	}
	target.Deck().AddAll(cards)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: target.Name(),
		Cards:      cards,
		Forced:     true,
	})
	g.logger.WithFields(logrus.Fields{
		"player": target.Name(),
		"amount": amount,
	}).Debug("forced pickup")
	return nil
}

// Skip makes the next advancement jump over one player.
func (g *Game) Skip() {
	skipped := g.PeekNextPlayer()
	g.cycler.Skip()
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
}

// Reverse flips the direction of play. The current player does not change.
func (g *Game) Reverse() {
	g.cycler.Reverse()
	g.events.TurnReversed.Emit(event.TurnReversedPayload{Direction: g.cycler.Direction()})
}

// NextPlayer advances the turn, honouring a pending skip.
func (g *Game) NextPlayer() *Player {
	g.cycler.Next()
	g.drewThisTurn = false
	next := g.CurrentPlayer()
	g.logger.WithField("player", next.Name()).Debug("turn started")
	return next
}

func (g *Game) playFromHand(player *Player, index int) error {
	hand := player.Deck()
	selected := hand.cards[index]
	if err := g.checkPickup(selected); err != nil {
		return err
	}
	if _, err := hand.Remove(index); err != nil {
		return err
	}

	g.putdownPile.Add(selected)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       selected,
	})
	g.logger.WithFields(logrus.Fields{
		"player": player.Name(),
		"card":   selected.Kind().String(),
		"left":   hand.Size(),
	}).Debug("card played")

	if err := g.performCardActions(selected); err != nil {
		// unreachable after checkPickup
		g.logger.WithError(err).Warn("card effect failed")
		return err
	}
	if g.checkWinner() {
		return nil
	}
	g.NextPlayer()
	return nil
}

func (g *Game) performCardActions(playedCard card.Card) error {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			if err := g.ForceDraw(g.PeekNextPlayer(), cardAction.Amount()); err != nil {
				return err
			}
		case action.ReverseTurnsAction:
			g.Reverse()
		case action.SkipTurnAction:
			g.Skip()
		}
	}
	return nil
}

// checkPickup fails when the forced draws of c could not all be served once
// c sits on the putdown pile.
func (g *Game) checkPickup(c card.Card) error {
	amount := 0
	for _, cardAction := range c.Actions() {
		if drawCards, ok := cardAction.(action.DrawCardsAction); ok {
			amount += drawCards.Amount()
		}
	}
	if amount == 0 {
		return nil
	}
	available := g.drawPile.Size()
	if g.rules.RecycleDiscards {
		available += g.putdownPile.Size()
	}
	if available < amount {
		return fmt.Errorf("%w: %s needs %d cards, %d left", consts.ErrorsEmptyPile, c, amount, available)
	}
	return nil
}

func (g *Game) ensureDrawable(amount int) error {
	if g.drawPile.Size() >= amount {
		return nil
	}
	recyclable := 0
	if g.rules.RecycleDiscards && g.putdownPile.Size() > 1 {
		recyclable = g.putdownPile.Size() - 1
	}
	if g.drawPile.Size()+recyclable < amount {
		return fmt.Errorf("%w: %d cards requested, %d left", consts.ErrorsEmptyPile, amount, g.drawPile.Size())
	}
	g.recycle()
	return nil
}

// recycle shuffles every putdown card but the top under the draw pile.
func (g *Game) recycle() {
	top, _ := g.putdownPile.PickOne()
	recycled := NewDeck(g.putdownPile.Cards()...)
	g.putdownPile.cards = g.putdownPile.cards[:0]
	g.putdownPile.Add(top)

	recycled.Shuffle(g.settings.rand)
	g.drawPile.Bury(recycled.cards)
	g.events.PileRecycled.Emit(event.PileRecycledPayload{Amount: recycled.Size()})
	g.logger.WithField("amount", recycled.Size()).Info("putdown pile recycled")
}

func (g *Game) checkWinner() bool {
	for _, player := range g.players {
		if player.HasWon() {
			g.winner = player
			g.events.GameWon.Emit(event.GameWonPayload{PlayerName: player.Name()})
			g.logger.WithField("winner", player.Name()).Info("game over")
			return true
		}
	}
	return false
}

func (g *Game) checkTurn(player *Player) error {
	if g.IsOver() {
		return fmt.Errorf("%w: the game is over", consts.ErrorsIllegalMove)
	}
	if player != g.CurrentPlayer() {
		return fmt.Errorf("%w: it is %s's turn, not %s's", consts.ErrorsIllegalMove, g.CurrentPlayer(), player)
	}
	return nil
}

func (g *Game) seat(player *Player) int {
	for index, seated := range g.players {
		if seated == player {
			return index
		}
	}
	return -1
}
