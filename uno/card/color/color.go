package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the fixed card colours. The zero value is not a colour.
type Color int

const (
	_ Color = iota
	Red
	Yellow
	Green
	Blue
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var colorStructs = map[Color]colorStruct{
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
}

// Colors lists every colour in deck order.
var Colors = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if s, ok := colorStructs[c]; ok {
		return s.name
	}
	return "none"
}

func (c Color) Valid() bool {
	_, ok := colorStructs[c]
	return ok
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	s, ok := colorStructs[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return s.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, s := range colorStructs {
		if s.name == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid color '%s'", name)
}
