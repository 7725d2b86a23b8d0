package serial

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSysfsFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  *string
		expected string
	}{
		{"normal file", strPtr("0416\n"), "0416"},
		{"file with spaces", strPtr("  KORAD  \n"), "KORAD"},
		{"nonexistent file", nil, ""},
		{"empty file", strPtr(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name)
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatalf("Setup failed: %v", err)
				}
			}
			if result := readSysfsFile(path); result != tt.expected {
				t.Errorf("readSysfsFile() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

// buildSysfs creates class/tty/<name>/device pointing at target inside a
// fake sysfs root. bInterfaceNumber goes into ifaceDir, every other
// attribute into usbDir.
func buildSysfs(t *testing.T, root, name, usbDir, ifaceDir, target string, attrs map[string]string) {
	t.Helper()

	for _, dir := range []string{usbDir, ifaceDir, target} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for file, content := range attrs {
		dir := usbDir
		if file == "bInterfaceNumber" {
			dir = ifaceDir
		}
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	classDir := filepath.Join(root, "class", "tty", name)
	if err := os.MkdirAll(classDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(classDir, "device")); err != nil {
		t.Fatal(err)
	}
}

func withSysfs(t *testing.T, root string) {
	t.Helper()
	old := sysfsDir
	sysfsDir = root
	t.Cleanup(func() { sysfsDir = old })
}

var koradAttrs = map[string]string{
	"idVendor":         "0416",
	"idProduct":        "5011",
	"serial":           "NT2009101400",
	"manufacturer":     "Nuvoton",
	"product":          "USB Virtual COM",
	"busnum":           "3",
	"devnum":           "12",
	"bInterfaceNumber": "00",
}

func TestEnrichUSBInfoACM(t *testing.T) {
	root := t.TempDir()
	withSysfs(t, root)

	// ttyACM: device links straight at the interface directory
	usbDir := filepath.Join(root, "devices", "pci0000:00", "usb3", "3-2")
	iface := filepath.Join(usbDir, "3-2:1.0")
	buildSysfs(t, root, "ttyACM0", usbDir, iface, iface, koradAttrs)

	info := &PortInfo{Name: "ttyACM0", Path: "/dev/ttyACM0"}
	enrichUSBInfo(info)

	checks := []struct {
		name     string
		got      string
		expected string
	}{
		{"VendorID", info.VendorID, "0416"},
		{"ProductID", info.ProductID, "5011"},
		{"SerialNumber", info.SerialNumber, "NT2009101400"},
		{"Manufacturer", info.Manufacturer, "Nuvoton"},
		{"Product", info.Product, "USB Virtual COM"},
		{"BusNumber", info.BusNumber, "3"},
		{"DeviceNumber", info.DeviceNumber, "12"},
		{"InterfaceNumber", info.InterfaceNumber, "00"},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %q, expected %q", c.name, c.got, c.expected)
		}
	}
}

func TestEnrichUSBInfoUSBSerial(t *testing.T) {
	root := t.TempDir()
	withSysfs(t, root)

	// ttyUSB: device links at a child of the interface directory
	usbDir := filepath.Join(root, "devices", "usb5", "5-2.3.1")
	iface := filepath.Join(usbDir, "5-2.3.1:1.0")
	tty := filepath.Join(iface, "ttyUSB0")
	attrs := map[string]string{
		"idVendor":         "0403",
		"idProduct":        "6001",
		"serial":           "FT123456",
		"busnum":           "5",
		"devnum":           "7",
		"bInterfaceNumber": "00",
	}
	buildSysfs(t, root, "ttyUSB0", usbDir, iface, tty, attrs)

	info := &PortInfo{Name: "ttyUSB0", Path: "/dev/ttyUSB0"}
	enrichUSBInfo(info)

	if info.VendorID != "0403" || info.ProductID != "6001" {
		t.Errorf("VID:PID = %s:%s, want 0403:6001", info.VendorID, info.ProductID)
	}
	if info.SerialNumber != "FT123456" {
		t.Errorf("SerialNumber = %q", info.SerialNumber)
	}
	if info.InterfaceNumber != "00" {
		t.Errorf("InterfaceNumber = %q, want 00", info.InterfaceNumber)
	}
}

func TestEnrichUSBInfoGracefulFailure(t *testing.T) {
	withSysfs(t, t.TempDir())

	info := &PortInfo{Name: "ttyUSB999", Path: "/dev/ttyUSB999"}
	enrichUSBInfo(info)

	if info.IsUSB() {
		t.Errorf("VendorID should be empty, got %q", info.VendorID)
	}
	if info.ProductID != "" || info.SerialNumber != "" {
		t.Errorf("unexpected metadata: %+v", info)
	}
}

func TestUSBDevicePath(t *testing.T) {
	tests := []struct {
		bus      string
		device   string
		expected string
	}{
		{"5", "7", "005/007"},
		{"1", "2", "001/002"},
		{"123", "456", "123/456"},
		{"1", "10", "001/010"},
	}

	for _, tt := range tests {
		got, err := usbDevicePath(&PortInfo{BusNumber: tt.bus, DeviceNumber: tt.device})
		if err != nil {
			t.Errorf("usbDevicePath(%q, %q) error = %v", tt.bus, tt.device, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("usbDevicePath(%q, %q) = %q, expected %q", tt.bus, tt.device, got, tt.expected)
		}
	}

	if _, err := usbDevicePath(&PortInfo{}); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("missing bus/device: got %v, want ErrUSBInfoNotAvailable", err)
	}
}

func TestResetUSBDeviceNotFound(t *testing.T) {
	if err := ResetUSBDevice("/dev/nonexistent"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("expected ErrDeviceNotFound, got %v", err)
	}
}

func TestResetUSBDeviceWithoutUSBInfo(t *testing.T) {
	if err := ResetUSBDevice("/dev/null"); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable, got %v", err)
	}
}
