package serial

import "errors"

// Errors returned by Open and the Port methods. Callers match them with
// errors.Is; the returned errors carry the port path as context.
var (
	ErrDeviceNotFound   = errors.New("no such serial port")
	ErrPermissionDenied = errors.New("no permission to open serial port")
	ErrDeviceInUse      = errors.New("serial port is held by another process")
	ErrInvalidBaudRate  = errors.New("unsupported baud rate")
	ErrInvalidConfig    = errors.New("invalid port settings")
	ErrPortClosed       = errors.New("port is closed")

	// ErrReadTimeout ends a Read that saw no data within the read timeout.
	// The supply signals end of reply this way.
	ErrReadTimeout = errors.New("read timed out")
)

// USB metadata and reset
var (
	ErrUSBInfoNotAvailable  = errors.New("port has no USB metadata")
	ErrUSBResetNotAvailable = errors.New("usbreset utility not found in PATH")
)
