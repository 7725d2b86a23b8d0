package serial

import "time"

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

func (p Parity) String() string {
	switch p {
	case ParityOdd:
		return "O"
	case ParityEven:
		return "E"
	default:
		return "N"
	}
}

// MaxReadTimeout is the longest read timeout accepted by WithReadTimeout
const MaxReadTimeout = 25500 * time.Millisecond

// Config holds the configuration for a serial port
type Config struct {
	BaudRate int
	DataBits int
	StopBits int
	Parity   Parity

	// ReadTimeout bounds how long a single Read waits for the first byte.
	// Millisecond resolution; a Read that sees no data returns ErrReadTimeout.
	ReadTimeout time.Duration
}

// Option is a functional option for configuring a serial port
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaudRate:    115200,
		DataBits:    8,
		StopBits:    1,
		Parity:      ParityNone,
		ReadTimeout: 2500 * time.Millisecond,
	}
}

// String renders the line settings as e.g. "9600 8N1"
func (c Config) String() string {
	return formatLine(c.BaudRate, c.DataBits, c.Parity, c.StopBits)
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if _, err := getBaudRate(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits int) Option {
	return func(c *Config) error {
		if bits < 5 || bits > 8 {
			return ErrInvalidConfig
		}
		c.DataBits = bits
		return nil
	}
}

// WithStopBits sets the number of stop bits (1 or 2)
func WithStopBits(bits int) Option {
	return func(c *Config) error {
		if bits != 1 && bits != 2 {
			return ErrInvalidConfig
		}
		c.StopBits = bits
		return nil
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(c *Config) error {
		if parity < ParityNone || parity > ParityEven {
			return ErrInvalidConfig
		}
		c.Parity = parity
		return nil
	}
}

// WithReadTimeout sets how long Read waits for data before giving up.
// Must be between 1ms and MaxReadTimeout.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < time.Millisecond || timeout > MaxReadTimeout {
			return ErrInvalidConfig
		}
		c.ReadTimeout = timeout
		return nil
	}
}
