/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/allbin/go-ka3005p"
	"github.com/spf13/cobra"
)

// executor is the part of a device the setter commands need
type executor interface {
	Execute(cmd ka3005p.Command) error
}

// controlCommands are the subcommands that translate to exactly one
// Command. Arguments are validated by ka3005p.ParseCommand.
var controlCommands = []struct {
	verb  string
	args  string
	short string
}{
	{"power", "{on|off}", "Switch the output on or off"},
	{"beep", "{on|off}", "Switch the key beep on or off"},
	{"ovp", "{on|off}", "Switch over-voltage protection on or off"},
	{"ocp", "{on|off}", "Switch over-current protection on or off"},
	{"voltage", "<volts>", "Program the output voltage (e.g. 12.5)"},
	{"current", "<amps>", "Program the current limit (e.g. 0.25)"},
	{"save", "<slot>", "Save the present settings to a memory slot"},
	{"load", "<slot>", "Recall settings from a memory slot"},
}

func init() {
	for _, c := range controlCommands {
		verb := c.verb
		rootCmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s %s", verb, c.args),
			Short: c.short,
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				exitOnError(withDevice(func(dev *ka3005p.Device) error {
					return runControl(dev, append([]string{verb}, args...))
				}))
			},
		})
	}
}

// runControl parses fields and executes the resulting command
func runControl(dev executor, fields []string) error {
	command, err := ka3005p.ParseCommand(fields)
	if err != nil {
		return err
	}
	return dev.Execute(command)
}
