package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/unoplus/config"
	"github.com/ratel-online/unoplus/consts"
)

// Session is one terminal: everything it shows goes to out, every answer is
// one line from in.
type Session struct {
	Config  config.Config
	TableID int64

	in    *bufio.Scanner
	out   io.Writer
	state consts.StateID
}

func NewSession(in io.Reader, out io.Writer, c config.Config) *Session {
	return &Session{
		Config: c,
		in:     bufio.NewScanner(in),
		out:    out,
		state:  consts.StateWelcome,
	}
}

// Write lets the session back an event listener.
func (s *Session) Write(bytes []byte) (int, error) {
	return s.out.Write(bytes)
}

func (s *Session) WriteString(data string) error {
	_, err := io.WriteString(s.out, data)
	return err
}

func (s *Session) WriteError(err error) error {
	if err == nil {
		return nil
	}
	return s.WriteString(err.Error() + "\n")
}

func (s *Session) AskForString() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", consts.ErrorsInputClosed, err)
		}
		return "", consts.ErrorsInputClosed
	}
	line := strings.TrimSpace(s.in.Text())
	if strings.ToLower(line) == consts.InputExit {
		return "", consts.ErrorsExit
	}
	return line, nil
}

func (s *Session) AskForInt() (int, error) {
	line, err := s.AskForString()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", consts.ErrorsInputInvalid, line)
	}
	return value, nil
}

func (s *Session) State(state consts.StateID) {
	s.state = state
}

func (s *Session) GetState() consts.StateID {
	return s.state
}
