/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allbin/go-ka3005p"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Read commands from stdin, one per line",
	Long: `Read commands from standard input and run each against the open
supply, keeping the port open between lines. Every line takes the same form
as a subcommand, e.g. "voltage 5" or "power on". "status" prints the status.

The loop ends at end of input or at the first failing line.

Examples:
  printf 'voltage 5\ncurrent 0.1\npower on\nstatus\n' | ka3005p interactive
  ka3005p interactive < sequence.txt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(withDevice(func(dev *ka3005p.Device) error {
			return runInteractive(os.Stdin, os.Stdout, dev)
		}))
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// controller is the part of a device the interactive loop drives
type controller interface {
	executor
	Status() (ka3005p.Status, error)
}

func runInteractive(in io.Reader, out io.Writer, dev controller) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := runLine(out, dev, fields); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func runLine(out io.Writer, dev controller, fields []string) error {
	if strings.EqualFold(fields[0], "status") {
		status, err := dev.Status()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, status.String())
		return err
	}
	return runControl(dev, fields)
}
