package ka3005p

import (
	"sync"
)

// timeoutError mimics a net-style timeout
type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

// fakeTransport replays scripted reply chunks per request. Once a
// request's chunks are exhausted, Read reports a timeout.
type fakeTransport struct {
	mu sync.Mutex

	replies map[string][][]byte
	pending [][]byte

	writes  []string
	flushes int
	closed  bool

	writeErr error
	shortBy  int
	flushErr error
	readErr  error
	// zeroRead returns (0, nil) instead of a timeout at end of frame
	zeroRead bool
}

func newFakeTransport(replies map[string][][]byte) *fakeTransport {
	return &fakeTransport{replies: replies}
}

func chunks(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return 0, f.writeErr
	}
	request := string(p)
	f.writes = append(f.writes, request)
	f.pending = append([][]byte(nil), f.replies[request]...)
	return len(p) - f.shortBy, nil
}

func (f *fakeTransport) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return f.flushErr
}

func (f *fakeTransport) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.pending) == 0 {
		if f.zeroRead {
			return 0, nil
		}
		return 0, timeoutError{}
	}
	chunk := f.pending[0]
	f.pending = f.pending[1:]
	return copy(p, chunk), nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// supplyReplies is a healthy supply in CV mode, output on, beep on
func supplyReplies() map[string][][]byte {
	return map[string][][]byte{
		"STATUS?": {{0x51}},
		"VOUT1?":  chunks("12.", "00"),
		"IOUT1?":  chunks("0.500\x00"),
		"VSET1?":  chunks("12.00"),
		"ISET1?":  chunks("1.000"),
		"*IDN?":   chunks("KORAD KA3005P V5.8 SN:03379314"),
	}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, msg)
}

func (l *recordingLogger) Debug(msg string, _ ...interface{}) { l.record("debug: " + msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{})  { l.record("info: " + msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{}) { l.record("error: " + msg) }
