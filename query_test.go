package termgrid

import (
	"errors"
	"io"
	"testing"
)

func TestCursorPosition(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)
	dev.FeedInput([]byte("\x1b[40;120R"))

	size, err := s.CursorPosition()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size.Columns != 120 || size.Rows != 40 {
		t.Errorf("expected {120 40}, got {%d %d}", size.Columns, size.Rows)
	}

	if got := dev.WrittenString(); got != "\x1b[6n" {
		t.Errorf("expected position request %q, got %q", "\x1b[6n", got)
	}
	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode entered and exited once, got %d/%d", enters, exits)
	}
}

func TestCursorPositionDetached(t *testing.T) {
	dev := NewNullDevice(80, 24)
	dev.Detach()
	s, err := New(Options{Size: &Size{Columns: 10, Rows: 5}, Device: dev})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	size, err := s.CursorPosition()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size.Columns != 0 || size.Rows != 0 {
		t.Errorf("expected zero size while detached, got {%d %d}", size.Columns, size.Rows)
	}

	// Detached sessions touch the device for neither the request nor
	// the reply.
	if got := dev.Written(); len(got) != 0 {
		t.Errorf("expected no writes, got %q", got)
	}
	if dev.Reads() != 0 {
		t.Errorf("expected no reads, got %d", dev.Reads())
	}
	enters, exits := dev.RawModeCalls()
	if enters != 0 || exits != 0 {
		t.Errorf("expected no raw mode toggling, got %d/%d", enters, exits)
	}
}

func TestCursorPositionNoisyReply(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)
	dev.FeedInput([]byte("xx\x1b[7;42R"))

	size, err := s.CursorPosition()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size.Columns != 42 || size.Rows != 7 {
		t.Errorf("expected {42 7}, got {%d %d}", size.Columns, size.Rows)
	}
}

func TestCursorPositionUnrecognizedReply(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)
	dev.FeedInput([]byte("garbage"))

	_, err := s.CursorPosition()
	if !errors.Is(err, ErrPositionParse) {
		t.Errorf("expected ErrPositionParse, got %v", err)
	}

	// Raw mode is restored even when the reply does not parse.
	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode restored, got %d/%d", enters, exits)
	}
}

func TestCursorPositionReadErrorPropagates(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)
	wantErr := errors.New("input closed")
	dev.FailReads(wantErr)

	_, err := s.CursorPosition()
	if !errors.Is(err, wantErr) {
		t.Errorf("expected read error to propagate, got %v", err)
	}

	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode restored after failed read, got %d/%d", enters, exits)
	}
}

func TestCursorPositionWriteErrorPropagates(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)
	wantErr := errors.New("broken pipe")
	dev.FailWrites(wantErr)

	_, err := s.CursorPosition()
	if !errors.Is(err, wantErr) {
		t.Errorf("expected write error to propagate, got %v", err)
	}

	// The read side is never armed when the request cannot be sent.
	if dev.Reads() != 0 {
		t.Errorf("expected no reads, got %d", dev.Reads())
	}
	enters, exits := dev.RawModeCalls()
	if enters != 0 || exits != 0 {
		t.Errorf("expected no raw mode toggling, got %d/%d", enters, exits)
	}
}

func TestCursorPositionSilentDevice(t *testing.T) {
	s, dev := newTestSession(t, 10, 5)

	// The null device reports EOF instead of blocking; the error
	// surfaces unchanged.
	_, err := s.CursorPosition()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode restored, got %d/%d", enters, exits)
	}
}
