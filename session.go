package termgrid

import (
	"io"

	clog "github.com/charmbracelet/log"

	"github.com/dshills/termgrid/internal/ansi"
	"github.com/dshills/termgrid/internal/grid"
)

// Options configures a Session. The zero value is a working default:
// the process terminal, a probed grid size, and no logging.
type Options struct {
	// Size fixes the grid dimensions. When nil the session probes the
	// device, falling back to 100x50 when not attached to a terminal.
	Size *Size

	// Device is the terminal endpoint. When nil the session uses the
	// process's standard input and output.
	Device Device

	// Logger receives debug traces of session activity. When nil the
	// traces are discarded. Point it at a file or stderr, never at the
	// stream the session itself draws on.
	Logger *clog.Logger
}

// Session owns a cell grid and the exclusive terminal handles used to
// draw it. Operations on one session must not be invoked concurrently;
// a session holds no locks and relies on its single caller.
type Session struct {
	grid    *grid.Grid
	channel *Channel
	out     *Output
	dev     Device
	log     *clog.Logger
}

// New constructs a session: it resolves the device, sizes the grid, and
// acquires the output owner. The session must be finished with End.
func New(opts Options) (*Session, error) {
	dev := opts.Device
	if dev == nil {
		dev = NewTTY()
	}
	logger := opts.Logger
	if logger == nil {
		logger = clog.New(io.Discard)
	}

	size := opts.Size
	if size == nil {
		probed, err := probeSize(dev)
		if err != nil {
			return nil, err
		}
		size = &probed
	}

	g, err := grid.New(size.Columns, size.Rows)
	if err != nil {
		return nil, err
	}

	channel := NewChannel(dev)
	s := &Session{
		grid:    g,
		channel: channel,
		out:     channel.AcquireOutput(),
		dev:     dev,
		log:     logger,
	}
	s.log.Debug("session started", "columns", size.Columns, "rows", size.Rows)
	return s, nil
}

// GridSize returns the dimensions of the session's grid.
func (s *Session) GridSize() (columns, rows int) {
	return s.grid.Size()
}

// SetCell stores text at grid coordinates (x, y). Out-of-range
// coordinates are silently discarded; text wider than one visible
// character fails with ErrInvalidCellContent. Nothing reaches the
// terminal until Flush.
func (s *Session) SetCell(x, y int, text string) error {
	return s.grid.SetCell(x, y, text)
}

// SetText writes text into the grid starting at (x, y), one visible
// character per cell, styling sequences traveling with the character
// they precede. Characters that fall off the right edge are discarded.
func (s *Session) SetText(x, y int, text string) error {
	for i, cell := range ansi.SplitCells(text) {
		if err := s.grid.SetCell(x+i, y, cell); err != nil {
			return err
		}
	}
	return nil
}

// Clear resets every grid cell to a space without touching the terminal.
func (s *Session) Clear() {
	s.grid.Clear()
}

// Flush writes the current frame to the terminal: a cursor-to-origin
// move followed by the full rendered grid.
func (s *Session) Flush() error {
	frame := ansi.CursorTo(1, 1) + s.grid.Render()
	s.log.Debug("flush", "bytes", len(frame))
	return s.out.WriteString(frame)
}

// HideCursor makes the cursor invisible.
func (s *Session) HideCursor() error {
	return s.out.WriteString(ansi.HideCursor)
}

// ShowCursor makes the cursor visible.
func (s *Session) ShowCursor() error {
	return s.out.WriteString(ansi.ShowCursor)
}

// SaveCursor asks the terminal to remember the cursor position.
func (s *Session) SaveCursor() error {
	return s.out.WriteString(ansi.SaveCursor)
}

// RestoreCursor returns the cursor to the position saved by SaveCursor.
func (s *Session) RestoreCursor() error {
	return s.out.WriteString(ansi.RestoreCursor)
}

// MoveCursor moves the cursor to (x, y). Coordinates are passed to the
// terminal unmodified: 1-indexed, not grid coordinates.
func (s *Session) MoveCursor(x, y int) error {
	return s.out.WriteString(ansi.CursorTo(x, y))
}

// ClearScreen erases the entire visible screen.
func (s *Session) ClearScreen() error {
	return s.out.WriteString(ansi.ClearScreen)
}

// ResetScreen rewinds the cursor to the top of the current frame and
// erases from there to the end of the screen, so the next Flush draws
// over the old frame in place.
func (s *Session) ResetScreen() error {
	_, rows := s.grid.Size()
	return s.out.WriteString(ansi.ResetScreen(rows))
}

// Size probes the terminal dimensions. Detached sessions report the
// fixed fallback of 100x50 without querying the device.
func (s *Session) Size() (Size, error) {
	return probeSize(s.dev)
}

// End releases the session's output owner. It must be called exactly
// once; ending a session twice, or writing through it afterward, is a
// programming error and panics.
func (s *Session) End() {
	s.out.Release()
	s.log.Debug("session ended")
}
