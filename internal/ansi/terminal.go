package ansi

import (
	"io"

	"golang.org/x/term"
)

// IsTerminal reports whether w is attached to an interactive terminal. Writers
// that are not files may answer for themselves by implementing
// IsTerminal() bool.
func IsTerminal(w io.Writer) bool {
	switch t := w.(type) {
	case interface{ IsTerminal() bool }:
		return t.IsTerminal()
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(t.Fd()))
	}
	return false
}
