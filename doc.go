// Package termgrid is a minimal cell-addressable rendering layer for
// text terminals: callers write single characters at (x, y) coordinates
// into an in-memory grid and flush the grid to the terminal as ANSI
// escape sequences.
//
// The package covers:
//   - A fixed-size character grid with bounds-checked writes and a
//     full-frame render
//   - Cursor visibility, save/restore, and absolute movement
//   - Screen clearing and in-place frame reset
//   - A blocking query for the terminal's reported cursor position
//   - Terminal size probing with a fixed off-terminal fallback
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│            Session (facade)             │
//	├─────────────────────────────────────────┤
//	│  grid.Grid │ ansi codec │  size probe   │
//	├─────────────────────────────────────────┤
//	│      Channel (single output owner)      │
//	├─────────────────────────────────────────┤
//	│    Device: TTY (unix) │ NullDevice      │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	s, err := termgrid.New(termgrid.Options{})
//	if err != nil {
//		return err
//	}
//	defer s.End()
//
//	s.HideCursor()
//	s.SetText(0, 0, "Hello world!")
//	s.Flush()
//
// Sessions are single-owner: no two session methods may run
// concurrently on the same session. The output write handle is acquired
// once at construction and released exactly once by End; writing
// through the session after End panics.
//
// CursorPosition performs the package's only bidirectional exchange
// with the terminal. Its read carries no timeout, so a terminal that
// never answers the position request hangs the call indefinitely.
// Detached sessions never reach that exchange: Size reports a fixed
// 100x50 fallback and CursorPosition reports the zero Size, both
// without touching the device.
//
// Raw mode and size queries use unix terminal control. On other
// platforms a TTY reports itself detached and sessions stay on the
// fallback paths.
package termgrid
