package state

import (
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/render"
)

type home struct{}

func (*home) Next(session *model.Session) (consts.StateID, error) {
	if err := render.HomeOptions(session); err != nil {
		return 0, err
	}
	selected, err := session.AskForInt()
	if err != nil {
		return 0, err
	}
	if selected == consts.OptionNewGame {
		return consts.StateGame, nil
	} else if selected == consts.OptionExit {
		return consts.StateExit, nil
	}
	return 0, consts.ErrorsInputInvalid
}
