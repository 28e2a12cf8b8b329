//go:build !unix

package termgrid

import (
	"errors"
	"os"
)

// TTY is the Device implementation backed by a real terminal. On
// platforms without unix terminal control it reports itself detached,
// which keeps sessions on their fallback paths: fixed dimensions and no
// cursor position exchange.
type TTY struct {
	in  *os.File
	out *os.File
}

var _ Device = (*TTY)(nil)

var errUnsupported = errors.New("terminal control not supported on this platform")

// NewTTY returns a TTY over the process's standard input and output.
func NewTTY() *TTY {
	return NewTTYFrom(os.Stdin, os.Stdout)
}

// NewTTYFrom returns a TTY over explicit files.
func NewTTYFrom(in, out *os.File) *TTY {
	return &TTY{in: in, out: out}
}

func (t *TTY) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *TTY) IsTerminal() bool {
	return false
}

func (t *TTY) EnterRawMode() error {
	return errUnsupported
}

func (t *TTY) ExitRawMode() error {
	return nil
}

func (t *TTY) Size() (columns, rows int, err error) {
	return 0, 0, errUnsupported
}
