package ka3005p

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/allbin/go-ka3005p/serial"
)

// Transport is the byte pipe a Device talks over. Read must return a
// timeout error (or 0, nil) once the line has been quiet for the read
// timeout; that is the only signal that a reply is complete.
type Transport interface {
	io.Reader
	io.Writer

	// Flush pushes buffered output to the wire
	Flush() error
}

// The request strings for every data query
const (
	queryStatus        = "STATUS?"
	queryOutputVoltage = "VOUT1?"
	queryOutputCurrent = "IOUT1?"
	querySetVoltage    = "VSET1?"
	querySetCurrent    = "ISET1?"
	queryIdentity      = "*IDN?"
)

// exchange writes request, flushes, then collects bytes until a read
// times out. The firmware sends no terminator, so the result may be
// empty.
func (d *Device) exchange(request string) ([]byte, error) {
	start := time.Now()
	payload := []byte(request)

	n, err := d.transport.Write(payload)
	if err != nil {
		return nil, fmt.Errorf("could not write command %q: %w", request, err)
	}
	if n != len(payload) {
		return nil, &ShortWriteError{Request: request, Written: n, Expected: len(payload)}
	}
	if err := d.transport.Flush(); err != nil {
		return nil, fmt.Errorf("could not flush command %q: %w", request, err)
	}

	var response []byte
	for {
		n, err := d.transport.Read(d.scratch)
		if n > 0 {
			response = append(response, d.scratch[:n]...)
		}
		if err != nil {
			if isTimeout(err) {
				break
			}
			d.logError("read failed", "request", request, "error", err)
			return nil, &ReadError{Request: request, Err: err}
		}
		if n == 0 {
			break
		}
	}

	d.logDebug("exchange complete",
		"request", request,
		"bytes", len(response),
		"elapsed", time.Since(start))
	return response, nil
}

// query is an exchange that must produce at least one byte
func (d *Device) query(request string) ([]byte, error) {
	response, err := d.exchange(request)
	if err != nil {
		return nil, err
	}
	if len(response) == 0 {
		return nil, fmt.Errorf("%s: %w", request, ErrEmptyResponse)
	}
	return response, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, serial.ErrReadTimeout) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
