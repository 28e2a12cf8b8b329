package termgrid

import (
	"errors"
	"testing"
)

func TestChannelAcquireOutput(t *testing.T) {
	ch := NewChannel(NewNullDevice(80, 24))

	out := ch.AcquireOutput()
	if out == nil {
		t.Fatal("expected an output owner")
	}
}

func TestChannelAcquireOutputTwicePanics(t *testing.T) {
	ch := NewChannel(NewNullDevice(80, 24))
	ch.AcquireOutput()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for second acquire")
		}
	}()
	ch.AcquireOutput()
}

func TestOutputWriteString(t *testing.T) {
	dev := NewNullDevice(80, 24)
	out := NewChannel(dev).AcquireOutput()

	if err := out.WriteString("abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.WriteString("def"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := dev.WrittenString(); got != "abcdef" {
		t.Errorf("expected %q, got %q", "abcdef", got)
	}
}

func TestOutputWriteStringEncodesUTF8(t *testing.T) {
	dev := NewNullDevice(80, 24)
	out := NewChannel(dev).AcquireOutput()

	out.WriteString("é")

	want := []byte{0xc3, 0xa9}
	got := dev.Written()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOutputWriteError(t *testing.T) {
	dev := NewNullDevice(80, 24)
	wantErr := errors.New("device gone")
	dev.FailWrites(wantErr)

	out := NewChannel(dev).AcquireOutput()
	if err := out.WriteString("x"); !errors.Is(err, wantErr) {
		t.Errorf("expected device error to propagate, got %v", err)
	}
}

func TestOutputReleaseTwicePanics(t *testing.T) {
	out := NewChannel(NewNullDevice(80, 24)).AcquireOutput()
	out.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for second release")
		}
	}()
	out.Release()
}

func TestOutputWriteAfterReleasePanics(t *testing.T) {
	out := NewChannel(NewNullDevice(80, 24)).AcquireOutput()
	out.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for write after release")
		}
	}()
	out.WriteString("x")
}

func TestChannelReadRaw(t *testing.T) {
	dev := NewNullDevice(80, 24)
	dev.FeedInput([]byte("reply"))
	ch := NewChannel(dev)

	buf := make([]byte, 16)
	n, err := ch.ReadRaw(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf[:n]) != "reply" {
		t.Errorf("expected %q, got %q", "reply", buf[:n])
	}

	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode entered and exited once, got %d/%d", enters, exits)
	}
}

func TestChannelReadRawRestoresOnReadError(t *testing.T) {
	dev := NewNullDevice(80, 24)
	wantErr := errors.New("input closed")
	dev.FailReads(wantErr)
	ch := NewChannel(dev)

	if _, err := ch.ReadRaw(make([]byte, 16)); !errors.Is(err, wantErr) {
		t.Errorf("expected read error to propagate, got %v", err)
	}

	enters, exits := dev.RawModeCalls()
	if enters != 1 || exits != 1 {
		t.Errorf("expected raw mode restored after failed read, got %d/%d", enters, exits)
	}
}
