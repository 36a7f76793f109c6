package model_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ratel-online/unoplus/config"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/model"
	"github.com/stretchr/testify/require"
)

func TestSessionAsk(t *testing.T) {
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader(" a \n12\nx\nEXIT\n"), &out, config.Default())

	line, err := session.AskForString()
	require.NoError(t, err)
	require.Equal(t, "a", line)

	number, err := session.AskForInt()
	require.NoError(t, err)
	require.Equal(t, 12, number)

	_, err = session.AskForInt()
	require.True(t, errors.Is(err, consts.ErrorsInputInvalid))

	_, err = session.AskForString()
	require.True(t, errors.Is(err, consts.ErrorsExit))

	_, err = session.AskForString()
	require.True(t, errors.Is(err, consts.ErrorsInputClosed))
}

func TestSessionWrite(t *testing.T) {
	out := bytes.Buffer{}
	session := model.NewSession(strings.NewReader(""), &out, config.Default())

	require.NoError(t, session.WriteString("hello\n"))
	require.NoError(t, session.WriteError(consts.ErrorsInputInvalid))
	require.NoError(t, session.WriteError(nil))

	require.Equal(t, "hello\nInput invalid. \n", out.String())
	require.Equal(t, consts.StateWelcome, session.GetState())
	session.State(consts.StateHome)
	require.Equal(t, consts.StateHome, session.GetState())
}
