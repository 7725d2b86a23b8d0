/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/allbin/go-ka3005p/serial"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [port]",
	Short: "Reset the supply's USB connection",
	Long: `Perform a USB-level reset on the supply. This can recover a supply
that stopped answering without physically unplugging it.

The supply re-enumerates after the reset, so its port path may change.
Without an argument the --device port, or the discovered supply, is reset.

Requirements:
- usbreset utility must be installed (from usbutils package)
- Root/sudo permissions required for USB operations

Examples:
  sudo ka3005p reset
  sudo ka3005p reset /dev/ttyACM0`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !serial.IsUSBResetAvailable() {
			fmt.Fprintln(os.Stderr, "Error: usbreset utility not available")
			fmt.Fprintln(os.Stderr, "Install with: sudo apt-get install usbutils")
			os.Exit(1)
		}

		var portPath string
		var err error
		if len(args) == 1 {
			portPath = args[0]
		} else if portPath, err = devicePath(); err != nil {
			exitOnError(err)
		}

		fmt.Printf("Resetting USB device: %s\n", portPath)
		if err := serial.ResetUSBDevice(portPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, serial.ErrUSBInfoNotAvailable) {
				fmt.Fprintln(os.Stderr, "This port does not appear to be a USB device")
			}
			os.Exit(1)
		}

		fmt.Println("USB device reset successfully")
		fmt.Println("Device will re-enumerate (port path may change)")
		fmt.Println("\nUse 'ka3005p list --table' to see the updated list")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
