//go:build unix

package termgrid

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the Device implementation backed by a real terminal. Raw mode
// is toggled on the input descriptor; dimensions come from the output
// descriptor.
type TTY struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
}

var _ Device = (*TTY)(nil)

// NewTTY returns a TTY over the process's standard input and output.
func NewTTY() *TTY {
	return NewTTYFrom(os.Stdin, os.Stdout)
}

// NewTTYFrom returns a TTY over explicit files. Tests use it to drive a
// session through a pseudo-terminal pair.
func NewTTYFrom(in, out *os.File) *TTY {
	return &TTY{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (t *TTY) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// IsTerminal reports whether both files are terminal-attached. It is
// queried fresh on every call; nothing is cached at construction.
func (t *TTY) IsTerminal() bool {
	return term.IsTerminal(t.inFd) && term.IsTerminal(t.outFd)
}

func (t *TTY) EnterRawMode() error {
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.oldTerm = old
	return nil
}

func (t *TTY) ExitRawMode() error {
	if t.oldTerm == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.oldTerm)
	t.oldTerm = nil
	return err
}

func (t *TTY) Size() (columns, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
