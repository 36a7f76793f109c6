package state

import (
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/model"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateGame, &unoGame{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(session *model.Session) (consts.StateID, error)
}

// Run drives session through the states until it exits or its input ends.
// Recoverable errors are shown and the current state is entered again.
func Run(session *model.Session) error {
	for {
		if session.GetState() == consts.StateExit {
			return nil
		}
		state, ok := states[session.GetState()]
		if !ok {
			session.State(consts.StateHome)
			continue
		}
		stateId, err := state.Next(session)
		if err != nil {
			if errors.Is(err, consts.ErrorsExit) || errors.Is(err, consts.ErrorsInputClosed) {
				return nil
			}
			var e consts.Error
			if errors.As(err, &e) && !e.Exit {
				_ = session.WriteError(err)
				continue
			}
			log.Errorf("[%s] %v\n", consts.StateNames[session.GetState()], err)
			return err
		}
		if stateId > 0 {
			session.State(stateId)
		}
	}
}
