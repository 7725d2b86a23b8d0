package serial

import (
	"fmt"
	"os/exec"
	"time"
)

// reenumerationDelay is how long a reset device typically needs to reappear
const reenumerationDelay = 2 * time.Second

// ResetUSBDevice performs a USB-level reset of the device behind portPath.
// This can recover hardware that stopped answering on its serial interface.
//
// Requires the usbreset utility (usbutils) and usually root. Returns
// ErrUSBInfoNotAvailable when the port has no USB bus/device numbers and
// ErrUSBResetNotAvailable when usbreset is not installed.
func ResetUSBDevice(portPath string) error {
	info, err := GetPortInfo(portPath)
	if err != nil {
		return fmt.Errorf("failed to get port info: %w", err)
	}

	usbPath, err := usbDevicePath(info)
	if err != nil {
		return err
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetNotAvailable
	}

	cmd := exec.Command("usbreset", usbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	time.Sleep(reenumerationDelay)
	return nil
}

// usbDevicePath builds the BBB/DDD argument usbreset expects
func usbDevicePath(info *PortInfo) (string, error) {
	bus, okBus := parseDecimal(info.BusNumber)
	dev, okDev := parseDecimal(info.DeviceNumber)
	if !okBus || !okDev {
		return "", ErrUSBInfoNotAvailable
	}
	return fmt.Sprintf("%03d/%03d", bus, dev), nil
}

func parseDecimal(s string) (int, bool) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}
