package ka3005p

import (
	"fmt"
	"time"
)

// Line settings fixed by the firmware
const (
	BaudRate = 9600
	DataBits = 8
	StopBits = 1
)

const (
	// DefaultReadTimeout is the silence that marks the end of a reply
	DefaultReadTimeout = 50 * time.Millisecond

	// MinBufferSize is the smallest scratch buffer a Device reads into
	MinBufferSize = 512
)

// Logger is an optional sink for diagnostic output
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Config holds Device settings
type Config struct {
	// ReadTimeout is how long the line must stay quiet before a
	// reply is considered complete
	ReadTimeout time.Duration

	// BufferSize is the size of each read into the scratch buffer
	BufferSize int

	// SetPoints makes Status also query VSET1? and ISET1?
	SetPoints bool

	Logger Logger
}

// Option configures a Device
type Option func(*Config) error

// DefaultConfig returns the settings used when no options are given
func DefaultConfig() Config {
	return Config{
		ReadTimeout: DefaultReadTimeout,
		BufferSize:  MinBufferSize,
		SetPoints:   true,
	}
}

// WithReadTimeout sets the inter-reply silence that ends a frame
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: read timeout must be positive, got %v", ErrInvalidConfig, d)
		}
		c.ReadTimeout = d
		return nil
	}
}

// WithBufferSize sets the scratch buffer size; at least MinBufferSize
func WithBufferSize(n int) Option {
	return func(c *Config) error {
		if n < MinBufferSize {
			return fmt.Errorf("%w: buffer size must be at least %d, got %d", ErrInvalidConfig, MinBufferSize, n)
		}
		c.BufferSize = n
		return nil
	}
}

// WithSetPoints controls whether Status reads the programmed set points
func WithSetPoints(enabled bool) Option {
	return func(c *Config) error {
		c.SetPoints = enabled
		return nil
	}
}

// WithLogger attaches a logger for exchange diagnostics
func WithLogger(l Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

func buildConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
