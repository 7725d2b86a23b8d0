package ka3005p

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/allbin/go-ka3005p/serial"
)

func newTestDevice(t *testing.T, ft *fakeTransport, opts ...Option) *Device {
	t.Helper()
	d, err := New(ft, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

func TestExchangeConcatenatesReads(t *testing.T) {
	ft := newFakeTransport(map[string][][]byte{
		"VOUT1?": chunks("12.", "00"),
	})
	d := newTestDevice(t, ft)

	got, err := d.Exchange("VOUT1?")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if !bytes.Equal(got, []byte("12.00")) {
		t.Errorf("Exchange() = %q, expected %q", got, "12.00")
	}
	if ft.flushes != 1 {
		t.Errorf("expected one flush, got %d", ft.flushes)
	}
}

func TestExchangeEmptyReplyIsNotAnError(t *testing.T) {
	ft := newFakeTransport(nil)
	d := newTestDevice(t, ft)

	got, err := d.Exchange("OUT1")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty reply, got %q", got)
	}
}

func TestExchangeZeroReadEndsFrame(t *testing.T) {
	ft := newFakeTransport(map[string][][]byte{"STATUS?": {{0x40}}})
	ft.zeroRead = true
	d := newTestDevice(t, ft)

	got, err := d.Exchange("STATUS?")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x40}) {
		t.Errorf("Exchange() = %v, expected [0x40]", got)
	}
}

func TestExchangeErrors(t *testing.T) {
	writeFailure := errors.New("port gone")
	readFailure := io.ErrUnexpectedEOF

	tests := []struct {
		name  string
		setup func(*fakeTransport)
		check func(*testing.T, error)
	}{
		{
			name:  "write error",
			setup: func(f *fakeTransport) { f.writeErr = writeFailure },
			check: func(t *testing.T, err error) {
				if !errors.Is(err, writeFailure) {
					t.Errorf("expected wrapped write error, got %v", err)
				}
			},
		},
		{
			name:  "short write",
			setup: func(f *fakeTransport) { f.shortBy = 1 },
			check: func(t *testing.T, err error) {
				var swe *ShortWriteError
				if !errors.As(err, &swe) {
					t.Fatalf("expected *ShortWriteError, got %T: %v", err, err)
				}
				if swe.Written != 5 || swe.Expected != 6 {
					t.Errorf("ShortWriteError = %d/%d, expected 5/6", swe.Written, swe.Expected)
				}
			},
		},
		{
			name:  "flush error",
			setup: func(f *fakeTransport) { f.flushErr = writeFailure },
			check: func(t *testing.T, err error) {
				if !errors.Is(err, writeFailure) {
					t.Errorf("expected wrapped flush error, got %v", err)
				}
			},
		},
		{
			name:  "read error",
			setup: func(f *fakeTransport) { f.readErr = readFailure },
			check: func(t *testing.T, err error) {
				var re *ReadError
				if !errors.As(err, &re) {
					t.Fatalf("expected *ReadError, got %T: %v", err, err)
				}
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("ReadError should unwrap to the cause, got %v", re.Err)
				}
				if re.Request != "VOUT1?" {
					t.Errorf("Request = %q, expected VOUT1?", re.Request)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := newFakeTransport(supplyReplies())
			tt.setup(ft)
			d := newTestDevice(t, ft)

			_, err := d.Exchange("VOUT1?")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

func TestExchangeRejectsEmptyRequest(t *testing.T) {
	d := newTestDevice(t, newFakeTransport(nil))
	if _, err := d.Exchange(""); err == nil {
		t.Error("expected error for empty request")
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"serial timeout", serial.ErrReadTimeout, true},
		{"wrapped serial timeout", fmt.Errorf("read: %w", serial.ErrReadTimeout), true},
		{"deadline exceeded", os.ErrDeadlineExceeded, true},
		{"timeout method", timeoutError{}, true},
		{"eof", io.EOF, false},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		if got := isTimeout(tt.err); got != tt.expected {
			t.Errorf("isTimeout(%s) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
