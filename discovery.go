package ka3005p

import "github.com/allbin/go-ka3005p/serial"

// VendorID is the USB vendor of the supply's CDC bridge (Nuvoton)
const VendorID uint16 = 0x0416

// ListPorts returns metadata for every serial port on the host
func ListPorts() ([]*serial.PortInfo, error) {
	paths, err := serial.ListPorts()
	if err != nil {
		return nil, err
	}

	infos := make([]*serial.PortInfo, 0, len(paths))
	for _, path := range paths {
		info, err := serial.GetPortInfo(path)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ListDevices returns the ports that look like a supply
func ListDevices() ([]*serial.PortInfo, error) {
	infos, err := ListPorts()
	if err != nil {
		return nil, err
	}
	return FilterSupplies(infos), nil
}

// FilterSupplies keeps the ports whose USB vendor is VendorID
func FilterSupplies(infos []*serial.PortInfo) []*serial.PortInfo {
	var matched []*serial.PortInfo
	for _, info := range infos {
		if vid, ok := info.USBVendorID(); ok && vid == VendorID {
			matched = append(matched, info)
		}
	}
	return matched
}

// FindDevice returns the path of the one attached supply. It returns
// ErrNoDevice when none match and a *MultipleDevicesError when more
// than one does; it never picks between candidates.
func FindDevice() (string, error) {
	devices, err := ListDevices()
	if err != nil {
		return "", err
	}
	return selectDevice(devices)
}

func selectDevice(devices []*serial.PortInfo) (string, error) {
	switch len(devices) {
	case 0:
		return "", ErrNoDevice
	case 1:
		return devices[0].Path, nil
	default:
		paths := make([]string, len(devices))
		for i, d := range devices {
			paths[i] = d.Path
		}
		return "", &MultipleDevicesError{Ports: paths}
	}
}
