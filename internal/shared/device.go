// Package shared provides a power supply handle that is safe to use from
// several goroutines.
package shared

import (
	"sync"

	"github.com/allbin/go-ka3005p"
)

// Device serializes every exchange on an underlying ka3005p.Device so
// that UI commands, timers and broker callbacks never interleave on the
// wire.
type Device struct {
	mu   sync.Mutex
	dev  *ka3005p.Device
	path string
}

// Wrap takes ownership of dev. path is informational.
func Wrap(dev *ka3005p.Device, path string) *Device {
	return &Device{dev: dev, path: path}
}

// Path returns the port the device was opened on
func (d *Device) Path() string {
	return d.path
}

func (d *Device) Execute(cmd ka3005p.Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev.Execute(cmd)
}

func (d *Device) Status() (ka3005p.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev.Status()
}

func (d *Device) Identify() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev.Identify()
}

func (d *Device) Exchange(request string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev.Exchange(request)
}

// Toggle reads the current state of one switch and flips it, holding
// the lock across both exchanges.
func (d *Device) Toggle(read func(ka3005p.Flags) ka3005p.Switch, build func(ka3005p.Switch) ka3005p.Command) (ka3005p.Switch, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status, err := d.dev.Status()
	if err != nil {
		return ka3005p.Off, err
	}
	next := read(status.Flags).Toggle()
	if err := d.dev.Execute(build(next)); err != nil {
		return ka3005p.Off, err
	}
	return next, nil
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev.Close()
}
