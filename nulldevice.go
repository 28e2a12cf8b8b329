package termgrid

import "io"

// NullDevice is an in-memory Device for testing. Output is captured,
// input is scripted ahead of time, and capability calls are counted so
// tests can assert which paths ran.
type NullDevice struct {
	attached      bool
	columns, rows int

	written []byte
	input   []byte

	reads     int
	rawEnters int
	rawExits  int
	sizeCalls int

	readErr  error
	writeErr error
	sizeErr  error
}

var _ Device = (*NullDevice)(nil)

// NewNullDevice creates an attached null device reporting the given
// dimensions.
func NewNullDevice(columns, rows int) *NullDevice {
	return &NullDevice{attached: true, columns: columns, rows: rows}
}

func (d *NullDevice) Read(p []byte) (int, error) {
	d.reads++
	if d.readErr != nil {
		return 0, d.readErr
	}
	if len(d.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, d.input)
	d.input = d.input[n:]
	return n, nil
}

func (d *NullDevice) Write(p []byte) (int, error) {
	if d.writeErr != nil {
		return 0, d.writeErr
	}
	d.written = append(d.written, p...)
	return len(p), nil
}

func (d *NullDevice) IsTerminal() bool {
	return d.attached
}

func (d *NullDevice) EnterRawMode() error {
	d.rawEnters++
	return nil
}

func (d *NullDevice) ExitRawMode() error {
	d.rawExits++
	return nil
}

func (d *NullDevice) Size() (columns, rows int, err error) {
	d.sizeCalls++
	if d.sizeErr != nil {
		return 0, 0, d.sizeErr
	}
	return d.columns, d.rows, nil
}

// Detach marks the device as not terminal-attached.
func (d *NullDevice) Detach() {
	d.attached = false
}

// FeedInput appends bytes to the scripted input. Reads consume the
// script in order; reading past its end returns io.EOF.
func (d *NullDevice) FeedInput(p []byte) {
	d.input = append(d.input, p...)
}

// Written returns everything written to the device so far.
func (d *NullDevice) Written() []byte {
	return d.written
}

// WrittenString returns everything written to the device as a string.
func (d *NullDevice) WrittenString() string {
	return string(d.written)
}

// ClearWritten discards the captured output.
func (d *NullDevice) ClearWritten() {
	d.written = nil
}

// Reads returns how many times Read was called.
func (d *NullDevice) Reads() int {
	return d.reads
}

// RawModeCalls returns how many times raw mode was entered and exited.
func (d *NullDevice) RawModeCalls() (enters, exits int) {
	return d.rawEnters, d.rawExits
}

// SizeCalls returns how many times Size was called.
func (d *NullDevice) SizeCalls() int {
	return d.sizeCalls
}

// FailReads makes every subsequent Read return err.
func (d *NullDevice) FailReads(err error) {
	d.readErr = err
}

// FailWrites makes every subsequent Write return err.
func (d *NullDevice) FailWrites(err error) {
	d.writeErr = err
}

// FailSize makes every subsequent Size call return err.
func (d *NullDevice) FailSize(err error) {
	d.sizeErr = err
}
