package console

import (
	"os"

	"golang.org/x/term"
)

// defaultWidth is used whenever stdout is not a terminal.
const defaultWidth = 80

// IsTerminal reports whether stdout is an interactive terminal. Clients use
// it to decide whether to print in color.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of the terminal attached to stdout, or a
// default width if there is none.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	tracer().P("format", "console").Debugf("terminal width is %d en", w)
	return w
}
