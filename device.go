package termgrid

// Device abstracts the terminal endpoint a session talks to: a byte
// stream in each direction plus the capabilities the session needs to
// gate and shape its terminal traffic. TTY implements it over a real
// terminal; NullDevice implements it in memory for tests.
type Device interface {
	// Read fills p from the input stream. It blocks until at least one
	// byte is available and carries no timeout.
	Read(p []byte) (n int, err error)

	// Write sends p to the output stream.
	Write(p []byte) (n int, err error)

	// IsTerminal reports whether both the input and output streams are
	// attached to an interactive terminal, as opposed to a redirected
	// file or pipe.
	IsTerminal() bool

	// EnterRawMode switches the input stream to raw mode: bytes are
	// delivered as they arrive, without line buffering or echo.
	EnterRawMode() error

	// ExitRawMode restores the input mode in effect before EnterRawMode.
	ExitRawMode() error

	// Size returns the device-reported terminal dimensions.
	Size() (columns, rows int, err error)
}
