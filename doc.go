// Package ka3005p controls KORAD KA3005P (and compatible) bench power
// supplies over their USB serial interface.
//
// The supply speaks a terse ASCII protocol with no line terminator:
// settings such as "VSET1:12.00" produce no reply, and queries such as
// "VOUT1?" produce a short reply that ends when the line goes quiet. A
// Device therefore frames every reply by reading until the transport's
// read timeout fires.
//
// # Opening a device
//
//	dev, err := ka3005p.Find()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
// Find requires exactly one attached supply. Use Open with an explicit
// path when several are connected, or New to drive any Transport.
//
// # Commands and status
//
//	dev.Execute(ka3005p.Voltage(12))
//	dev.Execute(ka3005p.Power(ka3005p.On))
//
//	status, err := dev.Status()
//	fmt.Println(status.Voltage, status.Flags.Output())
//
// Command values come from a closed set of types; ParseCommand builds
// one from command-line style fields.
//
// A Device is not safe for concurrent use.
package ka3005p
