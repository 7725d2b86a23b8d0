package ka3005p

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/allbin/go-ka3005p/serial"
)

// Device drives one supply over a Transport.
//
// A Device is not safe for concurrent use: an exchange is a
// write-then-read-until-quiet sequence and interleaving two of them
// corrupts both replies. Callers that share a Device must serialize
// access themselves.
type Device struct {
	transport Transport
	closer    io.Closer
	config    Config
	scratch   []byte
}

// New wraps an already opened transport. If t also implements
// io.Closer, Close closes it.
func New(t Transport, opts ...Option) (*Device, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: transport cannot be nil", ErrInvalidConfig)
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	d := &Device{
		transport: t,
		config:    cfg,
		scratch:   make([]byte, cfg.BufferSize),
	}
	if c, ok := t.(io.Closer); ok {
		d.closer = c
	}
	return d, nil
}

// Open opens the serial port at path with the supply's fixed line
// settings (9600 8N1) and the configured read timeout.
func Open(path string, opts ...Option) (*Device, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(path,
		serial.WithBaudRate(BaudRate),
		serial.WithDataBits(DataBits),
		serial.WithStopBits(StopBits),
		serial.WithParity(serial.ParityNone),
		serial.WithReadTimeout(cfg.ReadTimeout),
	)
	if err != nil {
		return nil, &OpenError{Port: path, Err: err}
	}

	d, err := New(portTransport{port}, opts...)
	if err != nil {
		port.Close()
		return nil, err
	}
	d.logInfo("opened power supply", "port", path, "line", port.Config().String())
	return d, nil
}

// Find opens the single attached supply; see FindDevice
func Find(opts ...Option) (*Device, error) {
	path, err := FindDevice()
	if err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// Config returns the settings the device was built with
func (d *Device) Config() Config {
	return d.config
}

// Execute sends a command. Any bytes the supply sends back are discarded.
func (d *Device) Execute(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command: %w", ErrUnsupported)
	}
	request := cmd.Encode()
	if _, err := d.exchange(request); err != nil {
		return err
	}
	d.logDebug("command sent", "request", request)
	return nil
}

// Exchange sends an arbitrary request and returns whatever came back,
// possibly nothing.
func (d *Device) Exchange(request string) ([]byte, error) {
	if request == "" {
		return nil, errors.New("request cannot be empty")
	}
	return d.exchange(request)
}

// Status reads the status byte, the live output readings and, unless
// disabled, the set points. It stops at the first failing query.
func (d *Device) Status() (Status, error) {
	raw, err := d.query(queryStatus)
	if err != nil {
		return Status{}, err
	}
	status := Status{Flags: Flags(raw[0])}

	if status.Voltage, err = d.reading(queryOutputVoltage); err != nil {
		return Status{}, err
	}
	if status.Current, err = d.reading(queryOutputCurrent); err != nil {
		return Status{}, err
	}

	if d.config.SetPoints {
		var sp SetPoints
		if sp.Voltage, err = d.reading(querySetVoltage); err != nil {
			return Status{}, err
		}
		if sp.Current, err = d.reading(querySetCurrent); err != nil {
			return Status{}, err
		}
		status.SetPoints = &sp
	}
	return status, nil
}

// Identify returns the *IDN? string, e.g. "KORAD KA3005P V5.8 SN:03379314"
func (d *Device) Identify() (string, error) {
	raw, err := d.query(queryIdentity)
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(printable(raw))
	if id == "" {
		return "", &DecodeError{Query: queryIdentity, Reply: raw, Err: ErrEmptyResponse}
	}
	return id, nil
}

// Close releases the transport if it is closable
func (d *Device) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

func (d *Device) reading(request string) (float32, error) {
	raw, err := d.query(request)
	if err != nil {
		return 0, err
	}
	return parseReading(request, raw)
}

func (d *Device) logDebug(msg string, kv ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, kv...)
	}
}

func (d *Device) logInfo(msg string, kv ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, kv...)
	}
}

func (d *Device) logError(msg string, kv ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, kv...)
	}
}

// portTransport adapts a serial.Port, whose flush is a tcdrain
type portTransport struct {
	serial.Port
}

func (p portTransport) Flush() error {
	return p.Drain()
}
