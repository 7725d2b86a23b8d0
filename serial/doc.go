// Package serial provides the Linux serial transport used to talk to the
// power supply.
//
// Ports are opened in raw mode for exclusive use. Reads wait with poll(2)
// for at most Config.ReadTimeout, at millisecond resolution, and report
// silence as ErrReadTimeout so callers can use it as a frame boundary:
//
//	port, err := serial.Open("/dev/ttyACM0",
//	    serial.WithBaudRate(9600),
//	    serial.WithReadTimeout(50*time.Millisecond),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	buf := make([]byte, 512)
//	n, err := port.Read(buf)
//	if errors.Is(err, serial.ErrReadTimeout) {
//	    // nothing arrived within 50ms
//	}
//
// # Port Discovery
//
// ListPorts scans /dev for serial nodes; GetPortInfo adds the USB vendor,
// product and serial number read from sysfs:
//
//	ports, _ := serial.ListPorts()
//	for _, p := range ports {
//	    info, _ := serial.GetPortInfo(p)
//	    fmt.Printf("%s VID=%s PID=%s\n", info.Path, info.VendorID, info.ProductID)
//	}
//
// # USB Reset
//
// ResetUSBDevice re-enumerates a hung USB device through the usbreset
// utility (usbutils package, root required).
//
// # Default Configuration
//
//   - BaudRate: 115200
//   - DataBits: 8
//   - StopBits: 1
//   - Parity: None
//   - ReadTimeout: 2.5 seconds
package serial
