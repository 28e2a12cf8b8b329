package termgrid

// Channel pairs a Device's two byte streams with the ownership
// discipline sessions rely on: writes funnel through a single output
// owner handed out once, and reads happen only inside a raw-mode scope.
// There is no locking anywhere in the channel; correctness comes from
// the handles not being shareable.
type Channel struct {
	dev      Device
	acquired bool
}

// NewChannel wraps a device in a channel. The output owner is not yet
// acquired.
func NewChannel(dev Device) *Channel {
	return &Channel{dev: dev}
}

// AcquireOutput hands out the channel's output owner. It may be called
// at most once per channel; a second call is a programming error and
// panics.
func (c *Channel) AcquireOutput() *Output {
	if c.acquired {
		panic("termgrid: output owner already acquired")
	}
	c.acquired = true
	return &Output{dev: c.dev}
}

// ReadRaw performs one blocking read from the input stream with the
// device in raw mode. Raw mode is entered for the duration of the read
// and restored before returning, on success and failure alike. The read
// itself carries no timeout or cancellation: if the device never
// delivers a byte, ReadRaw never returns, and raw mode stays in effect.
func (c *Channel) ReadRaw(p []byte) (int, error) {
	if err := c.dev.EnterRawMode(); err != nil {
		return 0, err
	}
	n, err := c.dev.Read(p)
	if restoreErr := c.dev.ExitRawMode(); err == nil {
		err = restoreErr
	}
	return n, err
}

// Output is the exclusively owned write side of a Channel. Every byte
// the session sends to the terminal passes through one Output, so
// writes from a session never interleave.
type Output struct {
	dev      Device
	released bool
}

// WriteString sends s to the device, encoded as UTF-8.
func (o *Output) WriteString(s string) error {
	if o.released {
		panic("termgrid: write on released output")
	}
	_, err := o.dev.Write([]byte(s))
	return err
}

// Release gives up the output owner. It must be called exactly once, at
// session end; releasing twice is a programming error and panics.
func (o *Output) Release() {
	if o.released {
		panic("termgrid: output released twice")
	}
	o.released = true
}
