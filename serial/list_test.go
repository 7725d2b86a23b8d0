package serial

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	if err != nil {
		t.Errorf("ListPorts failed: %v", err)
	}

	for _, port := range ports {
		if !strings.HasPrefix(port, "/dev/") {
			t.Errorf("Port path doesn't start with /dev/: %s", port)
		}
		if !isCharacterDevice(port) {
			t.Errorf("Port is not a character device: %s", port)
		}
	}

	for i := 1; i < len(ports); i++ {
		if ports[i-1] > ports[i] {
			t.Errorf("Ports are not sorted: %s > %s", ports[i-1], ports[i])
		}
	}
}

func TestListPortsSkipsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ttyACM0", "ttyUSB3", "tty1"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	old := devDir
	devDir = dir
	defer func() { devDir = old }()

	ports, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}
	if len(ports) != 0 {
		t.Errorf("expected regular files to be skipped, got %v", ports)
	}
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{os.TempDir(), false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		if result := isCharacterDevice(test.path); result != test.expected {
			t.Errorf("isCharacterDevice(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestIsSerialName(t *testing.T) {
	tests := []struct {
		name        string
		shouldMatch bool
	}{
		{"ttyUSB0", true},
		{"ttyUSB1", true},
		{"ttyACM0", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"ttymxc2", true},
		{"tty1", false},
		{"tty2", false},
		{"console", false},
		{"ptmx", false},
		{"ptyp0", false},
		{"random", false},
		{"urandom", false},
	}

	for _, test := range tests {
		if got := isSerialName(test.name); got != test.shouldMatch {
			t.Errorf("isSerialName(%q) = %v, want %v", test.name, got, test.shouldMatch)
		}
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyS0", "Standard Serial Port"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttymxc0", "i.MX Serial Port"},
		{"ttyO0", "OMAP Serial Port"},
		{"ttySAC0", "Samsung Serial Port"},
		{"ttyTHS0", "Tegra Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		if result := getPortDescription(test.name); result != test.expected {
			t.Errorf("getPortDescription(%s) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestGetPortInfo(t *testing.T) {
	info, err := GetPortInfo("/dev/null")
	if err != nil {
		t.Fatalf("GetPortInfo failed for /dev/null: %v", err)
	}
	if info.Name != "null" {
		t.Errorf("Expected name 'null', got '%s'", info.Name)
	}
	if info.Path != "/dev/null" {
		t.Errorf("Expected path '/dev/null', got '%s'", info.Path)
	}
	if info.Description == "" {
		t.Error("Description should not be empty")
	}
	if info.IsUSB() {
		t.Error("/dev/null should not carry USB metadata")
	}

	_, err = GetPortInfo("/dev/nonexistent")
	if err != ErrDeviceNotFound {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

func TestParseUSBID(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
		ok   bool
	}{
		{"0416", 0x0416, true},
		{"5011", 0x5011, true},
		{"ffff", 0xffff, true},
		{"", 0, false},
		{"xyz", 0, false},
		{"10000", 0, false},
	}

	for _, tt := range tests {
		info := &PortInfo{VendorID: tt.in}
		got, ok := info.USBVendorID()
		if got != tt.want || ok != tt.ok {
			t.Errorf("USBVendorID(%q) = %#x, %v; want %#x, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func BenchmarkListPorts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ListPorts(); err != nil {
			b.Errorf("ListPorts failed: %v", err)
		}
	}
}
