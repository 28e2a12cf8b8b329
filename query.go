package termgrid

import "github.com/dshills/termgrid/internal/ansi"

// replyBufferSize bounds a single cursor position reply. A tunable
// constant rather than an architectural limit; real replies run a dozen
// bytes or so.
const replyBufferSize = 100

// CursorPosition asks the terminal where its cursor is and parses the
// reply. Detached sessions return the zero Size immediately, with no
// write and no read. Attached sessions write the position request and
// perform one raw-mode read of the reply. The read blocks until the
// terminal answers and has no timeout, so a terminal that never replies
// hangs the call; see the package documentation. A reply without a
// recognizable report fails with ErrPositionParse.
func (s *Session) CursorPosition() (Size, error) {
	if !s.dev.IsTerminal() {
		return Size{}, nil
	}

	if err := s.out.WriteString(ansi.RequestCursorPosition); err != nil {
		return Size{}, err
	}

	buf := make([]byte, replyBufferSize)
	n, err := s.channel.ReadRaw(buf)
	if err != nil {
		return Size{}, err
	}

	rows, cols, err := ansi.ParseCursorReport(buf[:n])
	if err != nil {
		return Size{}, err
	}
	s.log.Debug("cursor position", "columns", cols, "rows", rows)
	return Size{Columns: cols, Rows: rows}, nil
}
