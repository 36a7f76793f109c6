package state

import (
	"errors"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/database"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/render"
	"github.com/ratel-online/unoplus/uno/game"
	"github.com/ratel-online/unoplus/uno/msg"
	"github.com/ratel-online/unoplus/uno/player"
)

type unoGame struct{}

func (*unoGame) Next(session *model.Session) (consts.StateID, error) {
	table, err := initUnoGame(session)
	if err != nil {
		return 0, err
	}
	session.TableID = table.ID
	defer func() {
		if err := database.DeleteTable(table.ID); err != nil {
			log.Error(err)
		}
		session.TableID = 0
	}()

	g := table.Game
	for !g.IsOver() {
		current := g.CurrentPlayer()
		if current.IsPlayable() {
			err = handlePlayUno(session, g, current)
		} else {
			_ = session.WriteString(msg.Message.PlayerTurnStarted(current.Name()))
			time.Sleep(session.Config.AIDelay)
			err = g.TakeTurn(current)
		}
		if errors.Is(err, consts.ErrorsEmptyPile) {
			_ = session.WriteString(msg.Message.PileExhausted())
			return consts.StateHome, nil
		}
		if err != nil {
			return 0, err
		}
	}
	return consts.StateHome, nil
}

func initUnoGame(session *model.Session) (*database.Table, error) {
	c := session.Config
	r := c.Rand()
	players, err := player.CreatePlayers(c.HumanNames, c.ComputerPlayers, r)
	if err != nil {
		return nil, err
	}
	g, err := game.NewStandard(players,
		game.WithRules(c.Rules()),
		game.WithRand(r),
		game.WithLogger(c.Logger()),
		game.WithListener(msg.NewListener(session, c.HumanNames...)),
	)
	if err != nil {
		return nil, err
	}
	return database.CreateTable(g)
}

// handlePlayUno prompts current until it plays, or draws and passes. Illegal
// moves are reported and asked again.
func handlePlayUno(session *model.Session, g *game.Game, current *game.Player) error {
	_ = session.WriteString(msg.Message.HumanPlayerTurnStarted(current.Name()))
	for {
		if err := render.Board(session, g.ExtractState(current)); err != nil {
			return err
		}
		options, err := render.CardOptions(session, current.Deck().Cards(), g.DrewThisTurn())
		if err != nil {
			return err
		}
		selected, err := session.AskForString()
		if err != nil {
			return err
		}
		switch selected {
		case consts.InputDraw:
			_, err = g.DrawCard(current)
			if err == nil {
				continue
			}
		case consts.InputPass:
			err = g.Pass(current)
		default:
			c, found := options[strings.ToUpper(selected)]
			if !found {
				_ = session.WriteError(consts.ErrorsInputInvalid)
				continue
			}
			err = g.SelectCard(current, c)
		}
		if errors.Is(err, consts.ErrorsIllegalMove) {
			_ = session.WriteError(err)
			continue
		}
		return err
	}
}
