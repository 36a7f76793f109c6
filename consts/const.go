package consts

import (
	"time"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateGame
	StateExit
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	StartingHandSize = 7
	AIDelay          = 2 * time.Second
)

// Home menu options.
const (
	OptionNewGame = 1
	OptionExit    = 2
)

// Labels accepted at the card prompt besides the card letters.
const (
	InputDraw = "+"
	InputPass = "-"
	InputExit = "exit"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsIllegalMove        = NewErr(1, false, "Illegal move. ")
	ErrorsEmptyPile          = NewErr(2, true, "Pile is empty. ")
	ErrorsInvalidArgument    = NewErr(3, false, "Invalid argument. ")
	ErrorsGamePlayersInvalid = NewErr(4, true, "Game players invalid. ")
	ErrorsTableInvalid       = NewErr(5, true, "Table invalid. ")
	ErrorsInputInvalid       = NewErr(6, false, "Input invalid. ")
	ErrorsConfigInvalid      = NewErr(7, true, "Config invalid. ")
	ErrorsInputClosed        = NewErr(8, true, "Input closed. ")
	ErrorsExit               = NewErr(9, true, "Exit. ")

	StateNames = map[StateID]string{
		StateWelcome: "Welcome",
		StateHome:    "Home",
		StateGame:    "Game",
		StateExit:    "Exit",
	}
)
