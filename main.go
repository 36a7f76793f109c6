package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unoplus/config"
	"github.com/ratel-online/unoplus/model"
	"github.com/ratel-online/unoplus/state"
	"github.com/ratel-online/unoplus/uno/card/color"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	c, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	session := model.NewSession(os.Stdin, color.Stdout, c)
	if err := state.Run(session); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
