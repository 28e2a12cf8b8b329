// Package ansi encodes and recognizes the escape sequences used to drive
// a terminal: cursor movement and visibility, screen clearing, and the
// cursor position report exchange. Everything here is pure: encoding and
// recognition only, no I/O.
package ansi

import "fmt"

// Fixed escape sequences. These are a wire contract with the terminal:
// the exact bytes matter for compatibility, so each one is spelled out
// literally rather than assembled from shared fragments.
const (
	// HideCursor makes the cursor invisible.
	HideCursor = "\x1b[?25l"

	// ShowCursor makes the cursor visible.
	ShowCursor = "\x1b[?25h"

	// SaveCursor stores the current cursor position in the terminal (DECSC).
	SaveCursor = "\x1b7"

	// RestoreCursor returns the cursor to the position stored by SaveCursor (DECRC).
	RestoreCursor = "\x1b8"

	// ClearScreen erases the entire visible screen.
	ClearScreen = "\x1b[2J"

	// RequestCursorPosition asks the terminal to report where its cursor is
	// (Device Status Report 6). The terminal answers on the input stream with
	// the form recognized by ParseCursorReport.
	RequestCursorPosition = "\x1b[6n"
)

// CursorTo encodes an absolute cursor move. Coordinates pass through to
// the terminal unmodified: the terminal expects them 1-indexed, row
// before column, so CursorTo(3, 5) encodes ESC[5;3H.
func CursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y, x)
}

// ResetScreen moves the cursor up rows-1 lines, returns it to column 0,
// and erases from the cursor to the end of the screen. It redraws over a
// frame of the given height in place, without switching screen buffers.
// The rows-1 arithmetic is emitted verbatim for every rows value.
func ResetScreen(rows int) string {
	return fmt.Sprintf("\x1b[%dA\r\x1b[?0J", rows-1)
}
