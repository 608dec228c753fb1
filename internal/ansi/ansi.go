// Package ansi writes the cursor control sequences used to keep a single
// progress line anchored in place.
package ansi

import (
	"fmt"
	"io"
)

const (
	csi        = "\x1b["
	clearLine  = csi + "2K"
	hideCursor = csi + "?25l"
	showCursor = csi + "?25h"
)

// CursorTo moves the cursor to the given zero based column of the current row.
func CursorTo(w io.Writer, col int) error {
	_, err := fmt.Fprintf(w, "%s%dG", csi, col+1)
	return err
}

// ClearLine erases the whole current row without moving the cursor.
func ClearLine(w io.Writer) error {
	_, err := io.WriteString(w, clearLine)
	return err
}

// MoveCursor moves the cursor relative to its current position. Zero deltas
// emit nothing.
func MoveCursor(w io.Writer, dx, dy int) error {
	var seq string
	switch {
	case dx < 0:
		seq += fmt.Sprintf("%s%dD", csi, -dx)
	case dx > 0:
		seq += fmt.Sprintf("%s%dC", csi, dx)
	}
	switch {
	case dy < 0:
		seq += fmt.Sprintf("%s%dA", csi, -dy)
	case dy > 0:
		seq += fmt.Sprintf("%s%dB", csi, dy)
	}
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(w, seq)
	return err
}

// Write writes text as is.
func Write(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// Cursor toggles cursor visibility on Out.
type Cursor struct {
	Out io.Writer
}

func (c Cursor) Hide() {
	_ = Write(c.Out, hideCursor)
}

func (c Cursor) Show() {
	_ = Write(c.Out, showCursor)
}
