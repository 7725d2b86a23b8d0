/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/serial"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached power supplies",
	Long: `List serial ports that look like a KA3005P (USB vendor 0416).

Use --all to include every serial port on the host, e.g. when the supply
sits behind a different USB bridge and has to be picked with --device.

With --verbose every match is printed with its USB metadata.

Examples:
  ka3005p list
  ka3005p list --verbose
  ka3005p list --all --table
  ka3005p list --all --filter usb`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")
		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		infos, err := ka3005p.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}
		if !all {
			infos = ka3005p.FilterSupplies(infos)
		}
		infos = filterPorts(infos, filterType)

		if viper.GetBool("verbose") && !tableFormat {
			for i, info := range infos {
				if i > 0 {
					fmt.Println()
				}
				printPortInfo(os.Stdout, info)
			}
			if len(infos) > 0 {
				return
			}
		}
		renderPorts(os.Stdout, infos, all, tableFormat)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("all", "a", false, "List every serial port, not only supplies")
	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

func renderPorts(w io.Writer, infos []*serial.PortInfo, all, tableFormat bool) {
	if len(infos) == 0 {
		if all {
			fmt.Fprintln(w, "No serial ports found")
		} else {
			fmt.Fprintln(w, "No power supplies found")
		}
		return
	}

	if tableFormat {
		fmt.Fprintf(w, "Found %d port(s):\n", len(infos))
		fmt.Fprintln(w, portTable(infos))
		return
	}
	for _, info := range infos {
		fmt.Fprintln(w, info.Path)
	}
}

// filterPorts keeps the ports matching the given type
func filterPorts(infos []*serial.PortInfo, filterType string) []*serial.PortInfo {
	if filterType == "" || filterType == "all" {
		return infos
	}

	var filtered []*serial.PortInfo
	for _, info := range infos {
		name := strings.ToLower(info.Name)
		switch strings.ToLower(filterType) {
		case "usb":
			if strings.HasPrefix(name, "ttyusb") || strings.HasPrefix(name, "ttyacm") {
				filtered = append(filtered, info)
			}
		case "standard":
			if strings.HasPrefix(name, "ttys") {
				filtered = append(filtered, info)
			}
		case "arm":
			if strings.HasPrefix(name, "ttyama") {
				filtered = append(filtered, info)
			}
		}
	}
	return filtered
}

func portTable(infos []*serial.PortInfo) string {
	columns := []column{
		{key: "port", title: "Port", width: 16},
		{key: "type", title: "Type", width: 16},
		{key: "usb", title: "USB ID", width: 11},
		{key: "serial", title: "Serial", width: 14},
		{key: "supply", title: "Supply", width: 8},
	}

	rows := make([]map[string]interface{}, 0, len(infos))
	for _, info := range infos {
		usbID := "-"
		if info.IsUSB() {
			usbID = info.VendorID + ":" + info.ProductID
		}
		supply := "no"
		if vid, ok := info.USBVendorID(); ok && vid == ka3005p.VendorID {
			supply = "yes"
		}
		rows = append(rows, map[string]interface{}{
			"port":   info.Path,
			"type":   getPortType(info.Name),
			"usb":    usbID,
			"serial": orDash(info.SerialNumber),
			"supply": supply,
		})
	}
	return renderStaticTable(columns, rows)
}

// getPortType returns a more specific type classification for the port
func getPortType(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "ttyusb"):
		return "USB Serial"
	case strings.HasPrefix(name, "ttyacm"):
		return "USB CDC/ACM"
	case strings.HasPrefix(name, "ttyama"):
		return "ARM Serial"
	case strings.HasPrefix(name, "ttys"):
		return "Standard Serial"
	default:
		return "Serial Port"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
