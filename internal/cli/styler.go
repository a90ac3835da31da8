package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fadedpez/cardkit/internal/config"
	"github.com/fadedpez/cardkit/pkg/cards"
	"github.com/fadedpez/cardkit/pkg/types"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styler paints text in a suit color
type Styler interface {
	Paint(c cards.Color, text string) string
}

type plainStyler struct{}

func (plainStyler) Paint(_ cards.Color, text string) string {
	return text
}

type colorStyler struct {
	red   *color.Color
	black *color.Color
}

func newColorStyler() *colorStyler {
	s := &colorStyler{
		red:   color.New(color.FgRed, color.Bold),
		black: color.New(color.Bold),
	}
	// The caller already decided colors are wanted, so ignore NO_COLOR and tty checks
	s.red.EnableColor()
	s.black.EnableColor()
	return s
}

func (s *colorStyler) Paint(c cards.Color, text string) string {
	switch c {
	case cards.Red:
		return s.red.Sprint(text)
	case cards.Black:
		return s.black.Sprint(text)
	}
	return text
}

// stylerFor picks a Styler for the given color mode. In auto mode colors are
// used only when out is a terminal.
func stylerFor(mode string, out io.Writer) (Styler, error) {
	switch mode {
	case config.ColorAlways:
		return newColorStyler(), nil
	case config.ColorNever:
		return plainStyler{}, nil
	case config.ColorAuto:
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return newColorStyler(), nil
		}
		return plainStyler{}, nil
	}
	return nil, types.NewCardError(types.ErrInvalidArgument, fmt.Sprintf("color must be auto, always or never, got %q", mode))
}
