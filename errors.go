package ka3005p

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when a query produced no bytes
	ErrEmptyResponse = errors.New("device did not respond with data")

	// ErrUnsupported is returned when a request names an action that
	// has no Command form (status, identify, list, interactive)
	ErrUnsupported = errors.New("operation not supported")

	// ErrNoDevice is returned by discovery when no supply is attached
	ErrNoDevice = errors.New("no power supply found")

	// ErrMultipleDevices is returned by discovery when the choice is ambiguous
	ErrMultipleDevices = errors.New("multiple power supplies found")

	// ErrInvalidConfig is returned by options given an out-of-range value
	// and by New when no transport is supplied
	ErrInvalidConfig = errors.New("invalid device configuration")
)

// OpenError reports a failure to open or configure the serial port
type OpenError struct {
	Port string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open power supply on %s: %v", e.Port, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ShortWriteError is returned when the transport accepted fewer bytes
// than the request holds
type ShortWriteError struct {
	Request  string
	Written  int
	Expected int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("could not write command %q: wrote %d of %d bytes", e.Request, e.Written, e.Expected)
}

// ReadError wraps a read failure other than the timeout that ends a frame
type ReadError struct {
	Request string
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not retrieve response from power supply for %q: %v", e.Request, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// DecodeError reports a reply that could not be parsed
type DecodeError struct {
	Query string
	Reply []byte
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode reply %q to %s: %v", e.Reply, e.Query, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MultipleDevicesError lists every port that matched during discovery.
// It matches ErrMultipleDevices with errors.Is.
type MultipleDevicesError struct {
	Ports []string
}

func (e *MultipleDevicesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMultipleDevices, strings.Join(e.Ports, ", "))
}

func (e *MultipleDevicesError) Unwrap() error {
	return ErrMultipleDevices
}
