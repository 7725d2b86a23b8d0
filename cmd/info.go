/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/serial"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [port]",
	Short: "Display port metadata and the supply's identity",
	Long: `Display USB metadata for the supply's port and ask the supply to
identify itself (*IDN?).

Without an argument the --device port, or the discovered supply, is used.

Examples:
  ka3005p info
  ka3005p info /dev/ttyACM0
  ka3005p info --no-identify /dev/ttyUSB0`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var portPath string
		var err error
		if len(args) == 1 {
			portPath = args[0]
		} else if portPath, err = devicePath(); err != nil {
			exitOnError(err)
		}

		info, err := serial.GetPortInfo(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting port info: %v\n", err)
			os.Exit(1)
		}
		printPortInfo(os.Stdout, info)

		if skip, _ := cmd.Flags().GetBool("no-identify"); skip {
			return
		}
		dev, err := ka3005p.Open(portPath, deviceOptions(newLogger())...)
		if err != nil {
			exitOnError(err)
		}
		identity, err := dev.Identify()
		dev.Close()
		exitOnError(err)
		fmt.Printf("\nIdentity:       %s\n", identity)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Bool("no-identify", false, "Only show port metadata, do not query the device")
}

func printPortInfo(w io.Writer, info *serial.PortInfo) {
	fmt.Fprintf(w, "Port Information: %s\n\n", info.Path)
	fmt.Fprintf(w, "  Name:        %s\n", info.Name)
	fmt.Fprintf(w, "  Description: %s\n", info.Description)

	if !info.IsUSB() {
		return
	}
	fmt.Fprintln(w, "\nUSB Device Information:")
	fields := []struct{ label, value string }{
		{"Vendor ID:   ", info.VendorID},
		{"Product ID:  ", info.ProductID},
		{"Serial:      ", info.SerialNumber},
		{"Interface:   ", info.InterfaceNumber},
		{"Bus:         ", info.BusNumber},
		{"Device:      ", info.DeviceNumber},
		{"Manufacturer:", info.Manufacturer},
		{"Product:     ", info.Product},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(w, "  %s %s\n", f.label, f.value)
		}
	}
	if vid, ok := info.USBVendorID(); ok && vid == ka3005p.VendorID {
		fmt.Fprintln(w, "  (matches the KA3005P vendor ID)")
	}
}
