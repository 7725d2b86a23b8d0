package ka3005p

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/allbin/go-ka3005p/serial"
)

func TestFilterSupplies(t *testing.T) {
	infos := []*serial.PortInfo{
		{Path: "/dev/ttyACM0", VendorID: "0416", ProductID: "5011"},
		{Path: "/dev/ttyUSB0", VendorID: "0403", ProductID: "6001"},
		{Path: "/dev/ttyS0"},
		{Path: "/dev/ttyACM1", VendorID: "0416"},
	}

	got := FilterSupplies(infos)
	var paths []string
	for _, info := range got {
		paths = append(paths, info.Path)
	}
	expected := []string{"/dev/ttyACM0", "/dev/ttyACM1"}
	if !reflect.DeepEqual(paths, expected) {
		t.Errorf("FilterSupplies() = %v, expected %v", paths, expected)
	}
}

func TestSelectDevice(t *testing.T) {
	one := []*serial.PortInfo{{Path: "/dev/ttyACM0"}}
	path, err := selectDevice(one)
	if err != nil || path != "/dev/ttyACM0" {
		t.Errorf("selectDevice(one) = %q, %v", path, err)
	}

	if _, err := selectDevice(nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("selectDevice(none) = %v, expected ErrNoDevice", err)
	}

	two := []*serial.PortInfo{{Path: "/dev/ttyACM0"}, {Path: "/dev/ttyACM1"}}
	_, err = selectDevice(two)
	if !errors.Is(err, ErrMultipleDevices) {
		t.Fatalf("selectDevice(two) = %v, expected ErrMultipleDevices", err)
	}
	var mde *MultipleDevicesError
	if !errors.As(err, &mde) || len(mde.Ports) != 2 {
		t.Fatalf("expected *MultipleDevicesError with two ports, got %v", err)
	}
	if !strings.Contains(err.Error(), "/dev/ttyACM1") {
		t.Errorf("error should list candidates: %v", err)
	}
}

func TestListPortsOnHost(t *testing.T) {
	infos, err := ListPorts()
	if err != nil {
		t.Fatalf("ListPorts failed: %v", err)
	}
	for _, info := range infos {
		if !strings.HasPrefix(info.Path, "/dev/") {
			t.Errorf("unexpected port path %q", info.Path)
		}
	}
}
