// Package color holds the bright ANSI palette used for console output.
package color

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
)

// Color is an ANSI 16-color palette index. Only the bright half (9-15) is
// named below.
type Color int

const (
	Red Color = iota + 9
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Reset clears every SGR attribute.
const Reset = "\x1b[0m"

// Sequence returns the SGR escape that switches the foreground to c,
// e.g. ESC[93m for Yellow.
func (c Color) Sequence() string {
	code := 30 + int(c)
	if c >= 8 {
		code = 90 + int(c) - 8
	}
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// Lipgloss converts c for use in lipgloss styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// Mode decides whether output is decorated.
type Mode int

const (
	// ModeAlways colors output regardless of the destination.
	ModeAlways Mode = iota
	// ModeAuto colors output only when it goes to a terminal.
	ModeAuto
	// ModeNever writes plain text.
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeAuto:
		return "auto"
	case ModeNever:
		return "never"
	default:
		return "unknown"
	}
}

// Enabled reports whether colors should be written to out under mode m.
func (m Mode) Enabled(out any) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(f.Fd())
	default:
		return false
	}
}

// Profile maps the mode to the termenv profile lipgloss renders with.
func (m Mode) Profile(out any) termenv.Profile {
	if m.Enabled(out) {
		return termenv.ANSI
	}
	return termenv.Ascii
}

// Paint wraps s in c and a trailing reset. An empty s is returned as is.
func Paint(c Color, s string) string {
	if s == "" {
		return s
	}
	return c.Sequence() + s + Reset
}

// Strip removes every ANSI escape sequence from s.
func Strip(s string) string {
	return xansi.Strip(s)
}
