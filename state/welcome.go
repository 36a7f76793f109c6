package state

import (
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/render"
)

type welcome struct{}

func (*welcome) Next(session *model.Session) (consts.StateID, error) {
	if err := render.Welcome(session); err != nil {
		return 0, err
	}
	return consts.StateHome, nil
}
