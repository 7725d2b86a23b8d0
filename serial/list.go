package serial

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Locations of the device and sysfs trees. Tests point these at fixtures.
var (
	devDir   = "/dev"
	sysfsDir = "/sys"
)

var (
	// Regular expressions for different types of serial devices
	serialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
		regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
		regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
		regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
		regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
		regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
		regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
		regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
	}

	// Exclude patterns for virtual terminals and other non-serial devices
	excludePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^tty\d+$`),  // Virtual terminals (tty1, tty2, etc.)
		regexp.MustCompile(`^console$`), // Console
		regexp.MustCompile(`^ptmx$`),    // Pseudo-terminal multiplexer
		regexp.MustCompile(`^pty.*$`),   // Pseudo-terminals
	}
)

// ListPorts returns a list of available serial ports on the system
// Filters for communication-capable devices and excludes virtual terminals
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, entry := range entries {
		name := entry.Name()
		if !isSerialName(name) {
			continue
		}

		fullPath := filepath.Join(devDir, name)
		if isCharacterDevice(fullPath) {
			ports = append(ports, fullPath)
		}
	}

	// Sort the ports for consistent ordering
	sort.Strings(ports)

	return ports, nil
}

// isSerialName reports whether a /dev entry name looks like a serial port
func isSerialName(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return false
		}
	}
	for _, pattern := range serialPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// PortInfo describes a serial port and, for USB ports, the device behind it
type PortInfo struct {
	Name        string
	Path        string
	Description string

	// USB metadata read from sysfs; empty for non-USB ports
	VendorID        string
	ProductID       string
	SerialNumber    string
	Manufacturer    string
	Product         string
	InterfaceNumber string
	BusNumber       string
	DeviceNumber    string
}

// IsUSB reports whether USB metadata was found for the port
func (info *PortInfo) IsUSB() bool {
	return info.VendorID != ""
}

// USBVendorID parses the hexadecimal sysfs vendor id
func (info *PortInfo) USBVendorID() (uint16, bool) {
	return parseUSBID(info.VendorID)
}

// USBProductID parses the hexadecimal sysfs product id
func (info *PortInfo) USBProductID() (uint16, bool) {
	return parseUSBID(info.ProductID)
}

func parseUSBID(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	if !isCharacterDevice(portPath) {
		return nil, ErrDeviceNotFound
	}

	name := filepath.Base(portPath)

	info := &PortInfo{
		Name:        name,
		Path:        portPath,
		Description: getPortDescription(name),
	}

	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		enrichUSBInfo(info)
	}

	return info, nil
}

// getPortDescription provides human-readable descriptions for different port types
func getPortDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(name, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(name, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(name, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(name, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(name, "ttyS"):
		return "Standard Serial Port"
	default:
		return "Serial Port"
	}
}

// maxSysfsDepth bounds the walk from the tty node up to the USB device
const maxSysfsDepth = 4

// enrichUSBInfo fills the USB fields from /sys/class/tty/<name>/device.
// ttyACM nodes link to the interface directory, ttyUSB nodes to a child of
// it, so the walk climbs until it finds idVendor. Missing files leave
// fields empty.
func enrichUSBInfo(info *PortInfo) {
	link := filepath.Join(sysfsDir, "class", "tty", info.Name, "device")
	dir, err := filepath.EvalSymlinks(link)
	if err != nil {
		return
	}

	for i := 0; i < maxSysfsDepth && dir != "/" && dir != "."; i++ {
		if info.InterfaceNumber == "" {
			info.InterfaceNumber = readSysfsFile(filepath.Join(dir, "bInterfaceNumber"))
		}

		if vendor := readSysfsFile(filepath.Join(dir, "idVendor")); vendor != "" {
			info.VendorID = vendor
			info.ProductID = readSysfsFile(filepath.Join(dir, "idProduct"))
			info.SerialNumber = readSysfsFile(filepath.Join(dir, "serial"))
			info.Manufacturer = readSysfsFile(filepath.Join(dir, "manufacturer"))
			info.Product = readSysfsFile(filepath.Join(dir, "product"))
			info.BusNumber = readSysfsFile(filepath.Join(dir, "busnum"))
			info.DeviceNumber = readSysfsFile(filepath.Join(dir, "devnum"))
			return
		}

		dir = filepath.Dir(dir)
	}
}

// readSysfsFile returns the trimmed contents of a sysfs attribute, or ""
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
